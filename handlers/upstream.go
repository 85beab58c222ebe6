package handlers

import (
	"errors"
	"net/http"

	"fieldportal/services/servicem8"
)

// upstreamStatus maps an upstream fault to the HTTP status this service
// answers with: 503 when no API key is configured, the upstream's own status
// when it is a meaningful HTTP code, 502 for transport failures, 500
// otherwise.
func upstreamStatus(err error) int {
	if errors.Is(err, servicem8.ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	var apiErr *servicem8.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 400 && apiErr.Status < 600 {
			return apiErr.Status
		}
		return http.StatusBadGateway
	}
	if errors.Is(err, servicem8.ErrUnreachable) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
