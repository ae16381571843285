package guardrails

type ValidationResult struct {
	IsValid  bool   // true = allowed ; false = blocked
	Reason   string // Why the prompt was blocked
	Category string // "off_topic", "prompt_injection", "banned_phrase", ...
	Method   string // "static" or "claude"
}
