package vnc

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks a read of a resource that does not exist on the
// controller. Callers treat it as a normal outcome, not a failure.
var ErrNotFound = errors.New("resource not found")

// APIError is a non-2xx response from the controller API.
type APIError struct {
	StatusCode int
	Op         string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: controller returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: controller returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsNotFound checks if an error indicates the resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// isLocked checks if an error indicates the resource is temporarily locked
// by a concurrent controller operation. These errors are retryable.
func isLocked(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusConflict || apiErr.StatusCode == http.StatusLocked
}
