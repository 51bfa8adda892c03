// Package apperr defines the error categories surfaced by HTTP handlers.
//
// Every failure a handler can report belongs to exactly one Kind, and every
// Kind maps to exactly one HTTP status code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for status-code mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	default:
		return "internal"
	}
}

// Error is a categorised application error. Code is a stable, machine
// readable identifier such as "username_empty"; Err holds the underlying
// cause, which is only ever logged.
type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports malformed or missing client input.
func Validation(code string) *Error { return &Error{Kind: KindValidation, Code: code} }

// NotFound reports an absent entity.
func NotFound(code string) *Error { return &Error{Kind: KindNotFound, Code: code} }

// Conflict reports a unique-constraint violation.
func Conflict(code string, err error) *Error {
	return &Error{Kind: KindConflict, Code: code, Err: err}
}

// Auth reports a credential mismatch or an unknown principal.
func Auth(code string) *Error { return &Error{Kind: KindAuth, Code: code} }

// Internal reports a store, credential or otherwise unexpected failure.
func Internal(code string, err error) *Error {
	return &Error{Kind: KindInternal, Code: code, Err: err}
}

// KindOf returns the Kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf returns the Code of err, or "internal" when err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "internal"
}

// Status maps err to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
