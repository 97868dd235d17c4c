package llm

import (
	"context"
	"errors"
	"fmt"
)

// ConfigurationError reports a request the client can never satisfy as
// configured (missing API key, PDF input to a text-only model). It is never
// retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "llm configuration: " + e.Reason
}

// TransientCallError wraps failures that are plausibly temporary: rate
// limits, 5xx responses, timeouts, connection resets. The retry policy backs
// off and tries again.
type TransientCallError struct {
	Op  string
	Err error
}

func (e *TransientCallError) Error() string {
	return fmt.Sprintf("llm %s: %v", e.Op, e.Err)
}

func (e *TransientCallError) Unwrap() error { return e.Err }

// SchemaValidationError reports model output that failed schema validation
// even after sanitation. Retried, since regeneration usually fixes it.
type SchemaValidationError struct {
	Err error
	Raw []byte
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("llm response schema: %v", e.Err)
}

func (e *SchemaValidationError) Unwrap() error { return e.Err }

// IsRetryable classifies an error for the retry policy. Configuration errors
// and context cancellation are terminal; everything else gets another
// attempt.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
