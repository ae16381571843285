package constraints

import (
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog override.
type File struct {
	Categories map[string]models.DesignConstraints `yaml:"categories"`
}

// LoadCatalog builds the default catalog and applies the overrides found at
// path. An empty path yields the defaults. A category present in the file
// replaces the default entry as a whole.
func LoadCatalog(path string) (*Catalog, error) {
	entries := Defaults()
	if path == "" {
		return NewCatalog(entries), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read constraints file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse constraints file: %w", err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	for name, set := range file.Categories {
		entries[normalize(name)] = set
	}

	return NewCatalog(entries), nil
}

func (f *File) Validate() error {
	for name, set := range f.Categories {
		if normalize(name) == "" {
			return fmt.Errorf("constraints file: empty category name")
		}
		for field, v := range map[string]*float64{
			"density":        set.Density,
			"min_thickness":  set.MinThickness,
			"max_weight":     set.MaxWeight,
			"min_chain_size": set.MinChainSize,
			"min_width":      set.MinWidth,
			"min_post_size":  set.MinPostSize,
		} {
			if v != nil && *v < 0 {
				return fmt.Errorf("constraints file: %s.%s must not be negative", name, field)
			}
		}
	}
	return nil
}
