package guardrails

import (
	"context"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/llm"
	"github.com/rs/zerolog"
)

type Guardrails struct {
	staticValidator *StaticValidator
	claudeValidator *ClaudeValidator
	logger          *zerolog.Logger
}

// NewGuardrails runs the static rules and, when claudeClient is not nil, the
// Claude validator after them.
func NewGuardrails(claudeClient llm.LLMClient, logger *zerolog.Logger) *Guardrails {
	g := &Guardrails{
		staticValidator: NewStaticValidator(DefaultBanWords),
		logger:          logger,
	}
	if claudeClient != nil {
		g.claudeValidator = NewClaudeValidator(claudeClient)
	}
	return g
}

func (g *Guardrails) ValidateInput(ctx context.Context, input string) ValidationResult {
	result := g.staticValidator.Validate(input)
	if !result.IsValid {
		g.logger.Info().Str("method", "static").Str("reason", result.Reason).Msg("Input blocked by static rules")
		return result
	}

	if g.claudeValidator == nil {
		return result
	}

	result = g.claudeValidator.Validate(ctx, input)
	if !result.IsValid {
		g.logger.Warn().
			Str("method", "claude").
			Str("category", result.Category).
			Str("reason", result.Reason).
			Msg("Input blocked by Claude validator")
	}
	return result
}
