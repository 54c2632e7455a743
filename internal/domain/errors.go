package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search pipeline.
var (
	// ErrInvalidRequest indicates the client request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMaxAttempts indicates the job poller exhausted its retry budget
	// without the upstream job completing.
	ErrMaxAttempts = errors.New("max poll attempts reached")
)

// ExternalAPIError wraps a transport failure, non-2xx status or JSON parse
// failure against one of the upstream endpoints. Call identifies which of
// the two upstream calls failed.
type ExternalAPIError struct {
	// Call names the failed upstream call ("price job" or "static info").
	Call string

	// Err is the underlying transport/parse error.
	Err error
}

// Error implements the error interface.
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external api error (%s): %v", e.Call, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExternalAPIError) Unwrap() error {
	return e.Err
}

// NewExternalAPIError wraps err as a failure of the named upstream call.
func NewExternalAPIError(call string, err error) *ExternalAPIError {
	return &ExternalAPIError{Call: call, Err: err}
}

// UpstreamShapeError indicates an upstream returned 200 but the payload
// shape violates the contract (e.g. the price list is not an array).
type UpstreamShapeError struct {
	// Payload names the offending payload ("price list" or "static info").
	Payload string

	// Detail describes what was wrong with the shape.
	Detail string
}

// Error implements the error interface.
func (e *UpstreamShapeError) Error() string {
	return fmt.Sprintf("invalid upstream shape (%s): %s", e.Payload, e.Detail)
}

// NewUpstreamShapeError builds an UpstreamShapeError for the named payload.
func NewUpstreamShapeError(payload, detail string) *UpstreamShapeError {
	return &UpstreamShapeError{Payload: payload, Detail: detail}
}

// MaxAttemptsError carries the attempt count when a poll budget runs out.
// It wraps ErrMaxAttempts so callers can use errors.Is.
type MaxAttemptsError struct {
	// Attempts is the number of attempts that were made.
	Attempts int
}

// Error implements the error interface.
func (e *MaxAttemptsError) Error() string {
	return fmt.Sprintf("job not completed after %d attempts", e.Attempts)
}

// Unwrap returns the ErrMaxAttempts sentinel.
func (e *MaxAttemptsError) Unwrap() error {
	return ErrMaxAttempts
}

// NewMaxAttemptsError builds a MaxAttemptsError for the given attempt count.
func NewMaxAttemptsError(attempts int) *MaxAttemptsError {
	return &MaxAttemptsError{Attempts: attempts}
}

// CacheError wraps a cache lookup/store failure. Cache errors are logged
// and swallowed by the pipeline, never surfaced to the caller.
type CacheError struct {
	// Op is the cache operation that failed ("lookup" or "store").
	Op string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsInvalidRequest reports whether err is (or wraps) a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsExternalAPI reports whether err is (or wraps) an upstream call failure.
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsUpstreamShape reports whether err is (or wraps) a payload shape violation.
func IsUpstreamShape(err error) bool {
	var shapeErr *UpstreamShapeError
	return errors.As(err, &shapeErr)
}

// IsMaxAttempts reports whether err is (or wraps) a poll budget exhaustion.
func IsMaxAttempts(err error) bool {
	return errors.Is(err, ErrMaxAttempts)
}
