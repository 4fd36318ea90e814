package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned by service functions when the requested trip,
// activity, or note does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a form rule
// (e.g. empty title, malformed date, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// FieldError is a single field-level validation message, shown next to the
// offending form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every failing field of one submission.
// It unwraps to ErrValidation so callers can test with errors.Is.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Field + ": " + e.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error { return ErrValidation }

// orNil returns nil when no field failed, so validators can end with
// `return errs.orNil()` without returning a typed-nil error.
func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// NotFoundError names the missing record. It unwraps to ErrNotFound.
type NotFoundError struct {
	Op   string // e.g. "service.TripService.Update"
	What string // "trip", "activity" or "note"
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return e.Op + ": " + e.What + " " + e.ID.String() + ": " + ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
