package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Note is a free-text annotation attached to a trip and dated.
type Note struct {
	ID      uuid.UUID `json:"id" yaml:"-"`
	TripID  uuid.UUID `json:"trip_id" yaml:"-"`
	Content string    `json:"content" yaml:"content"`
	Date    string    `json:"date" yaml:"date"` // DateLayout
}

// NoteInput is a Note before an id has been assigned.
type NoteInput struct {
	TripID  uuid.UUID
	Content string
	Date    string
}

// WithID builds the stored Note for id.
func (in NoteInput) WithID(id uuid.UUID) Note {
	return Note{ID: id, TripID: in.TripID, Content: in.Content, Date: in.Date}
}

// Input strips the id.
func (n Note) Input() NoteInput {
	return NoteInput{TripID: n.TripID, Content: n.Content, Date: n.Date}
}

// ValidateNote checks a note form submission.
func ValidateNote(in NoteInput) error {
	var errs FieldErrors
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, FieldError{Field: "content", Message: "Note content is required"})
	}
	if !validDate(in.Date) {
		errs = append(errs, FieldError{Field: "date", Message: "Date must be a yyyy-MM-dd date"})
	}
	return errs.orNil()
}
