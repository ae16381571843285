package generation

import (
	"errors"
	"fmt"
)

var ErrPromptBlocked = errors.New("prompt blocked")

// UpstreamError is a non-2xx answer from an external generation API. Body is
// the raw response payload.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, string(e.Body))
}

// UnexpectedError is any other failure while talking to an external API.
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// BlockedPromptError carries the guardrail verdict for a rejected prompt.
type BlockedPromptError struct {
	Reason   string
	Category string
}

func (e *BlockedPromptError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPromptBlocked, e.Reason)
}

func (e *BlockedPromptError) Is(target error) bool {
	return target == ErrPromptBlocked
}
