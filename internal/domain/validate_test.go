package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripmate/internal/domain"
)

func TestValidateTrip(t *testing.T) {
	ok := domain.TripInput{Title: "Summer", StartDate: "2024-07-01", EndDate: "2024-07-01"}
	require.NoError(t, domain.ValidateTrip(ok))

	err := domain.ValidateTrip(domain.TripInput{StartDate: "July 1", EndDate: "2024-07-01"})

	var fe domain.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.FieldErrors{
		{Field: "title", Message: "Title is required"},
		{Field: "start_date", Message: "Start date must be a yyyy-MM-dd date"},
	}, fe)
}

// TestValidateActivity_DurationBoundary verifies the form requires at least
// one minute even though a stored record may carry zero.
func TestValidateActivity_DurationBoundary(t *testing.T) {
	in := domain.ActivityInput{
		TripID:    uuid.New(),
		Title:     "Hike",
		StartTime: domain.DefaultStartTime,
		Duration:  1,
		Date:      "2024-07-01",
	}
	require.NoError(t, domain.ValidateActivity(in))

	in.Duration = 0
	assert.ErrorIs(t, domain.ValidateActivity(in), domain.ErrValidation)

	in.Duration = -5
	assert.ErrorContains(t, domain.ValidateActivity(in), "Duration must be at least 1 minute")
}

func TestValidateActivity_StartTime(t *testing.T) {
	in := domain.ActivityInput{Title: "Hike", Duration: domain.DefaultDuration, Date: "2024-07-01"}

	for _, st := range []string{"00:00", "09:30", "23:59"} {
		in.StartTime = st
		assert.NoError(t, domain.ValidateActivity(in), st)
	}
	for _, st := range []string{"", "24:00", "9:3", "noon"} {
		in.StartTime = st
		assert.Error(t, domain.ValidateActivity(in), st)
	}
}

func TestValidateNote(t *testing.T) {
	require.NoError(t, domain.ValidateNote(domain.NoteInput{Content: "x", Date: "2024-07-01"}))

	err := domain.ValidateNote(domain.NoteInput{Content: "\t", Date: "2024-07-01"})
	assert.EqualError(t, err, "validation error: content: Note content is required")
}

func TestFormatDate(t *testing.T) {
	d, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", domain.FormatDate(d))

	_, err = domain.ParseDate("2023-02-29")
	assert.Error(t, err)
}
