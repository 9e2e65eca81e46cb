package llm

import "errors"

var (
	// ErrUnknownModel indicates the requested model id is not in the registry.
	ErrUnknownModel = errors.New("unknown model id")

	// ErrProviderUnavailable indicates the provider is unreachable or
	// not configured with credentials.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrTimeout indicates the completion request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrInvalidOutput indicates the provider response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid completion output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("completion retry attempts exhausted")
)
