package setup

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/constraints"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation/meshy"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation/stability"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/validator"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Config    *Config
	Service   *generation.Service
	Validator *validator.DesignValidator
	Logger    *zerolog.Logger
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	catalog, err := constraints.LoadCatalog(cfg.ConstraintsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load constraints catalog: %w", err)
	}

	imageGen := stability.NewClient(generation.ClientConfig{
		BaseURL: cfg.StabilityAPIURL,
		APIKey:  cfg.StabilityAPIKey,
		Timeout: cfg.UpstreamTimeout,
	})
	modelGen := meshy.NewClient(generation.ClientConfig{
		BaseURL: cfg.MeshyAPIURL,
		APIKey:  cfg.MeshyAPIKey,
		Timeout: cfg.UpstreamTimeout,
	})

	var guard generation.PromptGuard
	if cfg.GuardrailsEnabled {
		g, err := createGuardrails(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create guardrails: %w", err)
		}
		guard = g
	}

	logger.Info().
		Strs("categories", catalog.Categories()).
		Bool("guardrails", cfg.GuardrailsEnabled).
		Msg("Dependencies wired")

	return &Dependencies{
		Config:    cfg,
		Service:   generation.NewService(imageGen, modelGen, guard, logger),
		Validator: validator.NewDesignValidator(catalog),
		Logger:    logger,
	}, nil
}

func createGuardrails(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*guardrails.Guardrails, error) {
	if cfg.GuardrailsModelID == "" {
		return guardrails.NewGuardrails(nil, logger), nil
	}

	client, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.GuardrailsModelID)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("region", cfg.AWSRegion).
		Str("model", cfg.GuardrailsModelID).
		Msg("Bedrock guardrails client initialized")

	return guardrails.NewGuardrails(client, logger), nil
}
