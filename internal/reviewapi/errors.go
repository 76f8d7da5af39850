package reviewapi

import (
	"errors"
	"fmt"
)

var (
	ErrNoFile       = errors.New("no file selected")
	ErrFileTooLarge = errors.New("file exceeds upload limit")
)

// APIError is a non-2xx response. Message is the body's "error" field and
// is empty when the server sent none.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

// TransportError covers failed round trips and response bodies that could
// not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err was raised before any request was sent.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoFile) || errors.Is(err, ErrFileTooLarge)
}
