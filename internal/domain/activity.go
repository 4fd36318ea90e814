package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Activity is a scheduled, timed event within a trip on a specific date.
type Activity struct {
	ID          uuid.UUID `json:"id" yaml:"-"`
	TripID      uuid.UUID `json:"trip_id" yaml:"-"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	StartTime   string    `json:"start_time" yaml:"start_time"` // TimeLayout
	Duration    int       `json:"duration" yaml:"duration"`     // minutes
	Date        string    `json:"date" yaml:"date"`             // DateLayout
}

// ActivityInput is an Activity before an id has been assigned.
type ActivityInput struct {
	TripID      uuid.UUID
	Title       string
	Description string
	StartTime   string
	Duration    int
	Date        string
}

// WithID builds the stored Activity for id.
func (in ActivityInput) WithID(id uuid.UUID) Activity {
	return Activity{
		ID:          id,
		TripID:      in.TripID,
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime,
		Duration:    in.Duration,
		Date:        in.Date,
	}
}

// Input strips the id.
func (a Activity) Input() ActivityInput {
	return ActivityInput{
		TripID:      a.TripID,
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		Duration:    a.Duration,
		Date:        a.Date,
	}
}

// DefaultStartTime and DefaultDuration prefill a new activity form.
const (
	DefaultStartTime = "09:00"
	DefaultDuration  = 60
)

// ValidateActivity checks an activity form submission.
// The stored record tolerates a zero duration, but the form asks for at
// least one minute.
func ValidateActivity(in ActivityInput) error {
	var errs FieldErrors
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	}
	if !validTime(in.StartTime) {
		errs = append(errs, FieldError{Field: "start_time", Message: "Start time must be HH:mm"})
	}
	if in.Duration < 1 {
		errs = append(errs, FieldError{Field: "duration", Message: "Duration must be at least 1 minute"})
	}
	if !validDate(in.Date) {
		errs = append(errs, FieldError{Field: "date", Message: "Date must be a yyyy-MM-dd date"})
	}
	return errs.orNil()
}
