package constraints

import (
	"sort"
	"strings"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
)

// Catalog maps a jewelry category to its manufacturing constraints. It is
// read-only once built and safe for concurrent use.
type Catalog struct {
	entries map[models.Category]models.DesignConstraints
}

func Defaults() map[models.Category]models.DesignConstraints {
	return map[models.Category]models.DesignConstraints{
		models.CategoryRing: {
			Density:      models.Float(19.3),
			MinThickness: models.Float(1.5),
		},
		models.CategoryNecklace: {
			Density:      models.Float(10.5),
			MinChainSize: models.Float(0.8),
		},
		models.CategoryBracelet: {
			Density:  models.Float(10.5),
			MinWidth: models.Float(2.0),
		},
		models.CategoryEarrings: {
			Density:     models.Float(10.5),
			MinPostSize: models.Float(0.8),
		},
	}
}

func NewCatalog(entries map[models.Category]models.DesignConstraints) *Catalog {
	c := &Catalog{entries: make(map[models.Category]models.DesignConstraints, len(entries))}
	for category, set := range entries {
		c.entries[normalize(string(category))] = clone(set)
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(Defaults())
}

// Lookup returns a copy of the constraints for category, matched case-insensitively.
func (c *Catalog) Lookup(category string) (models.DesignConstraints, bool) {
	set, ok := c.entries[normalize(category)]
	if !ok {
		return models.DesignConstraints{}, false
	}
	return clone(set), true
}

// Categories returns the catalog's category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.entries))
	for category := range c.entries {
		names = append(names, string(category))
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) All() map[string]models.DesignConstraints {
	out := make(map[string]models.DesignConstraints, len(c.entries))
	for category, set := range c.entries {
		out[string(category)] = clone(set)
	}
	return out
}

func normalize(category string) models.Category {
	return models.Category(strings.ToLower(strings.TrimSpace(category)))
}

// Overlay returns base with every limit set in override replacing the
// matching limit of base. Neither argument is modified.
func Overlay(base, override models.DesignConstraints) models.DesignConstraints {
	out := clone(base)
	pick := func(dst **float64, v *float64) {
		if v != nil {
			*dst = models.Float(*v)
		}
	}
	pick(&out.Density, override.Density)
	pick(&out.MinThickness, override.MinThickness)
	pick(&out.MaxWeight, override.MaxWeight)
	pick(&out.MinChainSize, override.MinChainSize)
	pick(&out.MinWidth, override.MinWidth)
	pick(&out.MinPostSize, override.MinPostSize)
	return out
}

func clone(set models.DesignConstraints) models.DesignConstraints {
	return models.DesignConstraints{
		Density:      copyFloat(set.Density),
		MinThickness: copyFloat(set.MinThickness),
		MaxWeight:    copyFloat(set.MaxWeight),
		MinChainSize: copyFloat(set.MinChainSize),
		MinWidth:     copyFloat(set.MinWidth),
		MinPostSize:  copyFloat(set.MinPostSize),
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return models.Float(*v)
}
