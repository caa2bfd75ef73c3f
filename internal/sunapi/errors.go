package sunapi

import (
	"fmt"
	"strings"
)

// NetworkError is returned when a request could not be completed or the API
// answered with a non-2xx status. StatusCode is zero for transport failures.
type NetworkError struct {
	StatusCode int
	StatusText string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode == 0 && e.Err != nil {
		return "Network error: " + e.Err.Error()
	}
	return strings.TrimSpace(fmt.Sprintf("Network error: %d %s", e.StatusCode, e.StatusText))
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is an application-level failure reported inside a well-formed
// HTTP response: a status other than OK or a missing results object.
type APIError struct {
	Day     string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
