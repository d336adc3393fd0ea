package cloudsigma

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for any non-2xx API response.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

// ErrorDetail is one entry of the error list the API returns.
type ErrorDetail struct {
	Type    string `json:"error_type"`
	Point   string `json:"error_point"`
	Message string `json:"error_message"`
}

func (e *APIError) Error() string {
	msg := e.Body
	if details := e.Details(); len(details) > 0 {
		parts := make([]string, 0, len(details))
		for _, d := range details {
			if d.Point != "" {
				parts = append(parts, fmt.Sprintf("%s: %s", d.Point, d.Message))
			} else {
				parts = append(parts, d.Message)
			}
		}
		msg = strings.Join(parts, "; ")
	}
	return fmt.Sprintf("cloudsigma: %s %s: %d %s: %s",
		e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), msg)
}

// Details parses the structured error list from the response body. It
// returns nil if the body is not in that format.
func (e *APIError) Details() []ErrorDetail {
	var details []ErrorDetail
	if err := json.Unmarshal([]byte(e.Body), &details); err != nil {
		return nil
	}
	return details
}

func isStatus(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if an error indicates rejected credentials.
func IsUnauthorized(err error) bool {
	return isStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}

// IsConflict checks if an error indicates the resource is busy or in a state
// that forbids the request, e.g. resizing a mounted drive.
func IsConflict(err error) bool {
	return isStatus(err, http.StatusConflict)
}
