package guardrails

import (
	"fmt"
	"strings"
)

const maxPromptLength = 2000

// DefaultBanWords are phrases that never belong in a design prompt.
var DefaultBanWords = []string{
	"ignore previous instructions",
	"ignore all previous instructions",
	"system prompt",
	"jailbreak",
}

type StaticValidator struct {
	banWords []string
}

func NewStaticValidator(banWords []string) *StaticValidator {
	lowered := make([]string, 0, len(banWords))
	for _, w := range banWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			lowered = append(lowered, w)
		}
	}
	return &StaticValidator{banWords: lowered}
}

func (v *StaticValidator) Validate(input string) ValidationResult {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ValidationResult{IsValid: false, Reason: "Prompt is empty", Category: "empty", Method: "static"}
	}

	if len(trimmed) > maxPromptLength {
		return ValidationResult{
			IsValid:  false,
			Reason:   fmt.Sprintf("Prompt exceeds %d characters", maxPromptLength),
			Category: "too_long",
			Method:   "static",
		}
	}

	lower := strings.ToLower(trimmed)
	for _, w := range v.banWords {
		if strings.Contains(lower, w) {
			return ValidationResult{
				IsValid:  false,
				Reason:   fmt.Sprintf("Prompt contains banned phrase %q", w),
				Category: "banned_phrase",
				Method:   "static",
			}
		}
	}

	return ValidationResult{IsValid: true, Reason: "Input validated", Category: "safe", Method: "static"}
}
