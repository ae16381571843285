package generation

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
	"github.com/rs/zerolog"
)

var ErrEmptyPrompt = errors.New("missing prompt")

const ImageFormat = "webp"

// ImageGenerator produces a 2D image for a prompt and returns the raw bytes.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// ModelGenerator starts a text-to-3D generation for a prompt.
type ModelGenerator interface {
	Generate(ctx context.Context, prompt string) (*models.Model3DResponse, error)
}

// PromptGuard decides whether a prompt may be forwarded upstream.
type PromptGuard interface {
	ValidateInput(ctx context.Context, input string) guardrails.ValidationResult
}

type Service struct {
	imageGen ImageGenerator
	modelGen ModelGenerator
	guard    PromptGuard
	logger   *zerolog.Logger
}

// NewService wires the generators. guard may be nil, in which case prompts
// are forwarded unchecked.
func NewService(imageGen ImageGenerator, modelGen ModelGenerator, guard PromptGuard, logger *zerolog.Logger) *Service {
	return &Service{
		imageGen: imageGen,
		modelGen: modelGen,
		guard:    guard,
		logger:   logger,
	}
}

func (s *Service) Generate2D(ctx context.Context, req models.GenerationRequest) (models.Image2DResponse, error) {
	if err := s.checkPrompt(ctx, req.Prompt); err != nil {
		return models.Image2DResponse{}, err
	}

	s.logger.Info().Str("prompt", req.Prompt).Msg("2D generation request")

	image, err := s.imageGen.Generate(ctx, req.Prompt)
	if err != nil {
		return models.Image2DResponse{}, err
	}

	return models.Image2DResponse{
		Image:  base64.StdEncoding.EncodeToString(image),
		Format: ImageFormat,
	}, nil
}

func (s *Service) Generate3D(ctx context.Context, req models.GenerationRequest) (models.Model3DResponse, error) {
	if err := s.checkPrompt(ctx, req.Prompt); err != nil {
		return models.Model3DResponse{}, err
	}

	s.logger.Info().
		Str("prompt", req.Prompt).
		Str("type", req.Type).
		Msg("3D generation request")

	result, err := s.modelGen.Generate(ctx, req.Prompt)
	if err != nil {
		return models.Model3DResponse{}, err
	}
	if result == nil {
		return models.Model3DResponse{}, nil
	}

	return *result, nil
}

func (s *Service) checkPrompt(ctx context.Context, prompt string) error {
	if prompt == "" {
		return ErrEmptyPrompt
	}
	if s.guard == nil {
		return nil
	}

	verdict := s.guard.ValidateInput(ctx, prompt)
	if !verdict.IsValid {
		s.logger.Warn().
			Str("method", verdict.Method).
			Str("category", verdict.Category).
			Str("reason", verdict.Reason).
			Msg("Prompt blocked")
		return &BlockedPromptError{Reason: verdict.Reason, Category: verdict.Category}
	}
	return nil
}
