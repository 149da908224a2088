package llmcatalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Store when a key has no value.
var ErrNotFound = errors.New("llmcatalog: key not found")

// TransportError reports a failed catalog request: the request could not be
// built or sent, or the server answered with a non-success status.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DeserializationError reports a payload that does not match the catalog schema.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return "decoding catalog payload: " + e.Err.Error()
}

func (e *DeserializationError) Unwrap() error { return e.Err }
