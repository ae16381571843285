package mcpadapter

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/constraints"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation/mocks"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/validator"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newValidator() *validator.DesignValidator {
	return validator.NewDesignValidator(constraints.DefaultCatalog())
}

func TestValidateDesign(t *testing.T) {
	tests := []struct {
		name    string
		input   ValidateDesignInput
		want    models.ValidationResult
		wantErr error
	}{
		{
			name: "explicit limits",
			input: ValidateDesignInput{
				Prompt:       models.String("gold ring"),
				Thickness:    models.Float(1.0),
				Weight:       models.Float(12),
				MinThickness: models.Float(1.5),
				MaxWeight:    models.Float(10),
			},
			want: models.ValidationResult{
				Valid:    false,
				Errors:   []string{"Thickness below minimum 1.5mm", "Weight exceeds maximum 10g"},
				Warnings: []string{},
			},
		},
		{
			name:  "catalog category",
			input: ValidateDesignInput{Prompt: models.String("Silver RING"), Thickness: models.Float(1.2), Category: "ring"},
			want: models.ValidationResult{
				Valid:    false,
				Errors:   []string{"Thickness below minimum 1.5mm"},
				Warnings: []string{},
			},
		},
		{
			name: "explicit limit laid over category",
			input: ValidateDesignInput{
				Prompt:    models.String("gold ring"),
				Thickness: models.Float(1.0),
				Weight:    models.Float(12),
				Category:  "ring",
				MaxWeight: models.Float(10),
			},
			want: models.ValidationResult{
				Valid:    false,
				Errors:   []string{"Thickness below minimum 1.5mm", "Weight exceeds maximum 10g"},
				Warnings: []string{},
			},
		},
		{
			name:  "empty prompt",
			input: ValidateDesignInput{Prompt: models.String(""), Category: "ring"},
			want:  models.ValidationResult{Valid: true, Errors: []string{}, Warnings: []string{}},
		},
		{
			name:    "no constraints source",
			input:   ValidateDesignInput{Prompt: models.String("gold ring")},
			wantErr: ErrNoConstraints,
		},
		{
			name:    "unknown category",
			input:   ValidateDesignInput{Prompt: models.String("gold tiara"), Category: "tiara"},
			wantErr: validator.ErrUnknownCategory,
		},
		{
			name:    "missing prompt",
			input:   ValidateDesignInput{Category: "ring"},
			wantErr: validator.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := ValidateDesign(context.Background(), newValidator(), nil, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListConstraints(t *testing.T) {
	v := newValidator()

	_, all, err := ListConstraints(context.Background(), v, nil, ListConstraintsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Categories) != 4 {
		t.Errorf("expected 4 categories, got %d", len(all.Categories))
	}

	_, one, err := ListConstraints(context.Background(), v, nil, ListConstraintsInput{Category: "bracelet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := one.Categories["bracelet"].MinWidth; got == nil || *got != 2.0 {
		t.Errorf("bracelet min_width = %v", got)
	}

	if _, _, err := ListConstraints(context.Background(), v, nil, ListConstraintsInput{Category: "crown"}); !errors.Is(err, validator.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestGenerateHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	images := mocks.NewMockImageGenerator(ctrl)
	meshes := mocks.NewMockModelGenerator(ctrl)
	logger := zerolog.Nop()
	svc := generation.NewService(images, meshes, nil, &logger)

	url := "https://assets.meshy.ai/ring.glb"
	images.EXPECT().Generate(gomock.Any(), "rose gold ring").Return([]byte{0x52, 0x49}, nil)
	meshes.EXPECT().Generate(gomock.Any(), "rose gold ring").Return(&models.Model3DResponse{ModelURL: &url}, nil)

	_, image, err := NewGenerate2DHandler(svc)(context.Background(), nil, GenerateInput{Prompt: "rose gold ring"})
	if err != nil {
		t.Fatalf("generate_2d error: %v", err)
	}
	if image.Format != "webp" || image.Image != "Ukk=" {
		t.Errorf("unexpected image %+v", image)
	}

	_, model, err := NewGenerate3DHandler(svc)(context.Background(), nil, GenerateInput{Prompt: "rose gold ring", Type: "ring"})
	if err != nil {
		t.Fatalf("generate_3d error: %v", err)
	}
	if model.ModelURL == nil || *model.ModelURL != url || model.Thumbnail != nil {
		t.Errorf("unexpected model %+v", model)
	}

	if _, _, err := NewGenerate2DHandler(svc)(context.Background(), nil, GenerateInput{}); !errors.Is(err, generation.ErrEmptyPrompt) {
		t.Errorf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestNewServer_ListTools(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	logger := zerolog.Nop()
	svc := generation.NewService(mocks.NewMockImageGenerator(ctrl), mocks.NewMockModelGenerator(ctrl), nil, &logger)

	server := NewServer(newValidator(), svc, "test")
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)

	want := []string{"generate_2d", "generate_3d", "list_constraints", "validate_design"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("tools = %v, want %v", names, want)
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "validate_design",
		Arguments: map[string]any{"prompt": "gold ring", "thickness": 1.0, "min_thickness": 1.5},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
}
