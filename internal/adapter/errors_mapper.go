package adapter

import (
	"fmt"
	"net/http"
)

// ServerError is returned for every response whose status is outside
// 200-299. Body holds whatever text could be read; when reading failed
// ReadErr is set and Body is empty.
type ServerError struct {
	StatusCode int
	Body       string
	ReadErr    error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Server error (HTTP %d). Body: %s", e.StatusCode, e.Body)
}

// Unwrap returns the sentinel for the status code, see [mapStatus].
func (e *ServerError) Unwrap() error {
	return mapStatus(e.StatusCode)
}

// mapStatus maps an HTTP status code to its sentinel so that errors.Is(err,
// ErrNotFound) and friends work. Unknown codes map to nil.
func mapStatus(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}
