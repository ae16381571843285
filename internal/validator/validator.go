package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/constraints"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
)

// ringToken selects the ring rules. Matching is a plain substring search, so
// "earrings" also selects them.
const ringToken = "ring"

// ValidateDesign checks a design's declared attributes against one constraint
// set. Both ring rules are always evaluated when the prompt matches; a rule
// whose limit is nil is skipped. Prompts that don't match are not checked.
func ValidateDesign(attrs models.DesignAttributes, c models.DesignConstraints) (models.ValidationResult, error) {
	if attrs.Prompt == nil {
		return models.ValidationResult{}, &MissingFieldError{Field: "prompt"}
	}

	errs := []string{}

	if strings.Contains(strings.ToLower(*attrs.Prompt), ringToken) {
		if c.MinThickness != nil && valueOrZero(attrs.Thickness) < *c.MinThickness {
			errs = append(errs, fmt.Sprintf("Thickness below minimum %smm", formatNumber(*c.MinThickness)))
		}

		if c.MaxWeight != nil && valueOrZero(attrs.Weight) > *c.MaxWeight {
			errs = append(errs, fmt.Sprintf("Weight exceeds maximum %sg", formatNumber(*c.MaxWeight)))
		}
	}

	return models.ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: []string{},
	}, nil
}

// DesignValidator resolves a category's constraints from a catalog before
// validating.
type DesignValidator struct {
	catalog *constraints.Catalog
}

func NewDesignValidator(catalog *constraints.Catalog) *DesignValidator {
	return &DesignValidator{
		catalog: catalog,
	}
}

func (v *DesignValidator) Validate(category string, attrs models.DesignAttributes) (models.ValidationResult, error) {
	c, ok := v.catalog.Lookup(category)
	if !ok {
		return models.ValidationResult{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return ValidateDesign(attrs, c)
}

// ValidateOverride validates against the category's catalog entry with the
// limits set in overrides laid over it. An empty category validates against
// overrides alone.
func (v *DesignValidator) ValidateOverride(category string, attrs models.DesignAttributes, overrides models.DesignConstraints) (models.ValidationResult, error) {
	if category == "" {
		return ValidateDesign(attrs, overrides)
	}

	c, ok := v.catalog.Lookup(category)
	if !ok {
		return models.ValidationResult{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return ValidateDesign(attrs, constraints.Overlay(c, overrides))
}

func (v *DesignValidator) ValidateWith(attrs models.DesignAttributes, c models.DesignConstraints) (models.ValidationResult, error) {
	return ValidateDesign(attrs, c)
}

func (v *DesignValidator) Catalog() *constraints.Catalog {
	return v.catalog
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
