// Package apperr classifies domain errors so handlers can map them to HTTP
// statuses with errors.Is.
package apperr

import (
	"errors"
	"net/http"
)

// Kinds. Domain errors match exactly one of these through errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

func NewValidation(msg string) error  { return &kindError{msg: msg, kind: ErrValidation} }
func NewConflict(msg string) error    { return &kindError{msg: msg, kind: ErrConflict} }
func NewNotFound(msg string) error    { return &kindError{msg: msg, kind: ErrNotFound} }
func NewForbidden(msg string) error   { return &kindError{msg: msg, kind: ErrForbidden} }
func NewUnavailable(msg string) error { return &kindError{msg: msg, kind: ErrUnavailable} }

// Status maps an error to the HTTP status a handler should answer with.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
