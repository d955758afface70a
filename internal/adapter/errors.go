package adapter

import (
	"errors"
	"fmt"
)

// Sentinels returned by [mapStatus].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrNoFileContent is returned when an upload has no file reader.
	ErrNoFileContent = errors.New("upload has no file content")
	// ErrNoResponseBody is recorded when a response carries no readable body.
	ErrNoResponseBody = errors.New("response has no body")
)

// DecodeError reports a success body that could not be decoded into the
// requested result type.
type DecodeError struct {
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response into %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a payload that could not be turned into wire bytes.
// Kind is one of "json", "form", "multipart" or "query".
type EncodeError struct {
	Kind string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s body: %v", e.Kind, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
