package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so handlers can pick a status code without
// inspecting error text.
type Kind int

const (
	Validation Kind = iota
	NotFound
	Conflict
	Storage
	Gateway
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Gateway:
		return "gateway"
	default:
		return "storage"
	}
}

func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Gateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// treated as storage failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}

// ParseKind maps a wire-level kind string back to a Kind. Used by the
// client adapter when decoding error bodies.
func ParseKind(s string) Kind {
	switch s {
	case "validation":
		return Validation
	case "not_found":
		return NotFound
	case "conflict":
		return Conflict
	case "gateway":
		return Gateway
	default:
		return Storage
	}
}
