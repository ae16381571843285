package mcpadapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/validator"
)

var ErrNoConstraints = errors.New("either category or min_thickness/max_weight is required")

// ValidateDesignInput is the MCP tool input schema for validate_design.
type ValidateDesignInput struct {
	Prompt       *string  `json:"prompt" jsonschema:"design description"`
	Thickness    *float64 `json:"thickness,omitempty" jsonschema:"declared thickness in mm"`
	Weight       *float64 `json:"weight,omitempty" jsonschema:"declared weight in grams"`
	Category     string   `json:"category,omitempty" jsonschema:"catalog category: ring, necklace, bracelet or earrings"`
	MinThickness *float64 `json:"min_thickness,omitempty" jsonschema:"explicit minimum thickness in mm, overrides the category limit"`
	MaxWeight    *float64 `json:"max_weight,omitempty" jsonschema:"explicit maximum weight in grams, overrides the category limit"`
}

type ListConstraintsInput struct {
	Category string `json:"category,omitempty" jsonschema:"optional category to filter on"`
}

type ListConstraintsOutput struct {
	Categories map[string]models.DesignConstraints `json:"categories"`
}

// GenerateInput is shared by generate_2d and generate_3d.
type GenerateInput struct {
	Prompt string `json:"prompt" jsonschema:"jewelry design description"`
	Type   string `json:"type,omitempty" jsonschema:"jewelry type, informational only"`
}

// NewValidateDesignHandler returns a tool handler backed by v.
// Pass the returned function to mcp.AddTool.
func NewValidateDesignHandler(v *validator.DesignValidator) func(context.Context, *mcp.CallToolRequest, ValidateDesignInput) (*mcp.CallToolResult, models.ValidationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ValidateDesignInput) (*mcp.CallToolResult, models.ValidationResult, error) {
		return ValidateDesign(ctx, v, req, input)
	}
}

// ValidateDesign checks the design against the category's catalog entry with
// any explicit limits laid over it, or against the explicit limits alone when
// no category is given.
func ValidateDesign(
	ctx context.Context,
	v *validator.DesignValidator,
	req *mcp.CallToolRequest,
	input ValidateDesignInput,
) (*mcp.CallToolResult, models.ValidationResult, error) {
	attrs := models.DesignAttributes{
		Prompt:    input.Prompt,
		Thickness: input.Thickness,
		Weight:    input.Weight,
	}

	if input.Category == "" && input.MinThickness == nil && input.MaxWeight == nil {
		return nil, models.ValidationResult{}, ErrNoConstraints
	}

	result, err := v.ValidateOverride(input.Category, attrs, models.DesignConstraints{
		MinThickness: input.MinThickness,
		MaxWeight:    input.MaxWeight,
	})
	return nil, result, err
}

func NewListConstraintsHandler(v *validator.DesignValidator) func(context.Context, *mcp.CallToolRequest, ListConstraintsInput) (*mcp.CallToolResult, ListConstraintsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListConstraintsInput) (*mcp.CallToolResult, ListConstraintsOutput, error) {
		return ListConstraints(ctx, v, req, input)
	}
}

func ListConstraints(
	ctx context.Context,
	v *validator.DesignValidator,
	req *mcp.CallToolRequest,
	input ListConstraintsInput,
) (*mcp.CallToolResult, ListConstraintsOutput, error) {
	if input.Category == "" {
		return nil, ListConstraintsOutput{Categories: v.Catalog().All()}, nil
	}

	set, ok := v.Catalog().Lookup(input.Category)
	if !ok {
		return nil, ListConstraintsOutput{}, fmt.Errorf("%w: %q", validator.ErrUnknownCategory, input.Category)
	}
	return nil, ListConstraintsOutput{Categories: map[string]models.DesignConstraints{input.Category: set}}, nil
}

func NewGenerate2DHandler(svc *generation.Service) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, models.Image2DResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, models.Image2DResponse, error) {
		result, err := svc.Generate2D(ctx, models.GenerationRequest{Prompt: input.Prompt, Type: input.Type})
		return nil, result, err
	}
}

func NewGenerate3DHandler(svc *generation.Service) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, models.Model3DResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, models.Model3DResponse, error) {
		result, err := svc.Generate3D(ctx, models.GenerationRequest{Prompt: input.Prompt, Type: input.Type})
		return nil, result, err
	}
}
