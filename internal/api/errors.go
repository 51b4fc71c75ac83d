package api

import (
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response outside the taxonomy the client handles
// specially (401 auth, 429 quota). Message comes from the backend's JSON
// error field when present, otherwise the HTTP status text.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// NotFound reports whether the response was a 404.
func (e *StatusError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// DecodeError marks a 2xx response whose body failed to decode or validate.
// Surfacing it as its own type keeps malformed server payloads from
// propagating as half-filled records.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
