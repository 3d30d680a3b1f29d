package gateway

import "fmt"

// ValidationError reports rejected input. No provider request is made when
// validation fails, so Reason is safe to show to the user as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ProviderError wraps a failure from the analysis provider. Callers show the
// user a single generic message and log the wrapped cause.
type ProviderError struct {
	Provider string
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
