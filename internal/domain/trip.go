// Package domain contains the core data types for TripMate.
// This package depends only on uuid and is imported by every other internal
// package (store, planner, service, handler).
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Trip is the top-level planning unit. Activities and notes reference a trip
// through their TripID; the trip record itself holds no nested collections.
type Trip struct {
	ID          uuid.UUID `json:"id" yaml:"-"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	StartDate   string    `json:"start_date" yaml:"start_date"` // DateLayout
	EndDate     string    `json:"end_date" yaml:"end_date"`     // DateLayout
}

// TripInput is a Trip before an id has been assigned.
type TripInput struct {
	Title       string
	Description string
	StartDate   string
	EndDate     string
}

// WithID builds the stored Trip for id.
func (in TripInput) WithID(id uuid.UUID) Trip {
	return Trip{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
}

// Input strips the id, e.g. to re-validate an edited trip.
func (t Trip) Input() TripInput {
	return TripInput{
		Title:       t.Title,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
	}
}

// Itinerary is the read-only "trip with everything in it" view: the trip
// plus its activities and notes, each in insertion order.
type Itinerary struct {
	Trip       Trip
	Activities []Activity
	Notes      []Note
}

// ValidateTrip checks a trip form submission.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - StartDate and EndDate must be yyyy-MM-dd dates.
//   - EndDate must not be before StartDate.
func ValidateTrip(in TripInput) error {
	var errs FieldErrors
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}
	startOK := validDate(in.StartDate)
	if !startOK {
		errs = append(errs, FieldError{Field: "start_date", Message: "Start date must be a yyyy-MM-dd date"})
	}
	endOK := validDate(in.EndDate)
	if !endOK {
		errs = append(errs, FieldError{Field: "end_date", Message: "End date must be a yyyy-MM-dd date"})
	}
	// DateLayout sorts lexically in date order.
	if startOK && endOK && in.EndDate < in.StartDate {
		errs = append(errs, FieldError{Field: "end_date", Message: "End date must not be before start date"})
	}
	return errs.orNil()
}
