package validator

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/constraints"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
)

func ringLimits() models.DesignConstraints {
	return models.DesignConstraints{
		MinThickness: models.Float(1.5),
		MaxWeight:    models.Float(10),
	}
}

func TestValidateDesign(t *testing.T) {
	tests := []struct {
		name        string
		attrs       models.DesignAttributes
		constraints models.DesignConstraints
		wantErrors  []string
	}{
		{
			name:        "ring below minimum thickness",
			attrs:       models.DesignAttributes{Prompt: models.String("gold ring"), Thickness: models.Float(1.0)},
			constraints: ringLimits(),
			wantErrors:  []string{"Thickness below minimum 1.5mm"},
		},
		{
			name:        "ring within limits",
			attrs:       models.DesignAttributes{Prompt: models.String("gold ring"), Thickness: models.Float(2.0), Weight: models.Float(5)},
			constraints: ringLimits(),
			wantErrors:  []string{},
		},
		{
			name:        "earrings match the ring rules",
			attrs:       models.DesignAttributes{Prompt: models.String("silver earrings"), Thickness: models.Float(0.1)},
			constraints: ringLimits(),
			wantErrors:  []string{"Thickness below minimum 1.5mm"},
		},
		{
			name:        "necklace is not checked",
			attrs:       models.DesignAttributes{Prompt: models.String("silver necklace")},
			constraints: ringLimits(),
			wantErrors:  []string{},
		},
		{
			name:        "both rules fire",
			attrs:       models.DesignAttributes{Prompt: models.String("Platinum RING"), Thickness: models.Float(0.5), Weight: models.Float(12.25)},
			constraints: ringLimits(),
			wantErrors:  []string{"Thickness below minimum 1.5mm", "Weight exceeds maximum 10g"},
		},
		{
			name:        "absent thickness defaults to zero",
			attrs:       models.DesignAttributes{Prompt: models.String("signet ring"), Weight: models.Float(3)},
			constraints: ringLimits(),
			wantErrors:  []string{"Thickness below minimum 1.5mm"},
		},
		{
			name:        "thickness equal to minimum passes",
			attrs:       models.DesignAttributes{Prompt: models.String("ring"), Thickness: models.Float(1.5), Weight: models.Float(1)},
			constraints: ringLimits(),
			wantErrors:  []string{},
		},
		{
			name:        "weight equal to maximum passes",
			attrs:       models.DesignAttributes{Prompt: models.String("ring"), Thickness: models.Float(2), Weight: models.Float(10)},
			constraints: ringLimits(),
			wantErrors:  []string{},
		},
		{
			name:        "weight only",
			attrs:       models.DesignAttributes{Prompt: models.String("chunky ring"), Thickness: models.Float(3), Weight: models.Float(10.5)},
			constraints: ringLimits(),
			wantErrors:  []string{"Weight exceeds maximum 10g"},
		},
		{
			name:        "missing max weight skips weight rule",
			attrs:       models.DesignAttributes{Prompt: models.String("ring"), Thickness: models.Float(2), Weight: models.Float(500)},
			constraints: models.DesignConstraints{MinThickness: models.Float(1.5)},
			wantErrors:  []string{},
		},
		{
			name:        "empty constraint set",
			attrs:       models.DesignAttributes{Prompt: models.String("ring")},
			constraints: models.DesignConstraints{},
			wantErrors:  []string{},
		},
		{
			name:        "empty prompt is not a ring",
			attrs:       models.DesignAttributes{Prompt: models.String(""), Thickness: models.Float(0.1), Weight: models.Float(50)},
			constraints: ringLimits(),
			wantErrors:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDesign(tt.attrs, tt.constraints)
			if err != nil {
				t.Fatalf("ValidateDesign() error = %v", err)
			}

			if !reflect.DeepEqual(got.Errors, tt.wantErrors) {
				t.Errorf("Errors = %q, want %q", got.Errors, tt.wantErrors)
			}
			if got.Valid != (len(got.Errors) == 0) {
				t.Errorf("Valid = %v with %d errors", got.Valid, len(got.Errors))
			}
			if got.Warnings == nil || len(got.Warnings) != 0 {
				t.Errorf("Warnings = %v, want empty slice", got.Warnings)
			}
		})
	}
}

func TestValidateDesign_MissingPrompt(t *testing.T) {
	_, err := ValidateDesign(models.DesignAttributes{Thickness: models.Float(1)}, ringLimits())
	if err == nil {
		t.Fatal("expected error for missing prompt")
	}
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}

	var mf *MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "prompt" {
		t.Errorf("expected MissingFieldError for prompt, got %#v", err)
	}
}

func TestValidateDesign_DoesNotMutateInputs(t *testing.T) {
	attrs := models.DesignAttributes{Prompt: models.String("ring"), Thickness: models.Float(1)}
	c := ringLimits()

	if _, err := ValidateDesign(attrs, c); err != nil {
		t.Fatal(err)
	}
	if *attrs.Thickness != 1 || attrs.Weight != nil {
		t.Errorf("attributes mutated: %+v", attrs)
	}
	if *c.MinThickness != 1.5 || *c.MaxWeight != 10 {
		t.Errorf("constraints mutated: %+v", c)
	}
}

func TestValidateDesign_Concurrent(t *testing.T) {
	attrs := models.DesignAttributes{Prompt: models.String("gold ring"), Thickness: models.Float(1.0)}
	c := ringLimits()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ValidateDesign(attrs, c)
			if err != nil || got.Valid || len(got.Errors) != 1 {
				t.Errorf("unexpected result %+v, err %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestDesignValidator_Validate(t *testing.T) {
	v := NewDesignValidator(constraints.DefaultCatalog())

	tests := []struct {
		name      string
		category  string
		attrs     models.DesignAttributes
		wantValid bool
		wantErr   error
	}{
		{
			name:      "ring defaults flag thin band",
			category:  "ring",
			attrs:     models.DesignAttributes{Prompt: models.String("thin gold ring"), Thickness: models.Float(0.8)},
			wantValid: false,
		},
		{
			name:      "category is case insensitive",
			category:  "Ring",
			attrs:     models.DesignAttributes{Prompt: models.String("gold ring"), Thickness: models.Float(2)},
			wantValid: true,
		},
		{
			name:      "necklace has no ring limits",
			category:  "necklace",
			attrs:     models.DesignAttributes{Prompt: models.String("pearl necklace")},
			wantValid: true,
		},
		{
			name:     "unknown category",
			category: "tiara",
			attrs:    models.DesignAttributes{Prompt: models.String("tiara")},
			wantErr:  ErrUnknownCategory,
		},
		{
			name:      "empty prompt passes",
			category:  "ring",
			attrs:     models.DesignAttributes{Prompt: models.String("")},
			wantValid: true,
		},
		{
			name:     "missing prompt",
			category: "ring",
			attrs:    models.DesignAttributes{},
			wantErr:  ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.category, tt.attrs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors %q)", got.Valid, tt.wantValid, got.Errors)
			}
		})
	}
}
