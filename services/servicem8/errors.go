package servicem8

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no API key was supplied at construction.
// The portal surfaces it as service-unavailable rather than failing startup.
var ErrNotConfigured = errors.New("servicem8: API key not configured")

// ErrUnreachable wraps transport-level failures, including timeouts. Remote
// rejections are reported as *APIError instead.
var ErrUnreachable = errors.New("servicem8: upstream unreachable")

// APIError reports a non-2xx response from ServiceM8.
type APIError struct {
	Status   int
	Body     string
	Endpoint string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("servicem8: %s returned HTTP %d: %s", e.Endpoint, e.Status, e.Body)
}
