package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/store"
)

func tripInput(title string) domain.TripInput {
	return domain.TripInput{
		Title:       title,
		Description: "A relaxing beach getaway",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-08",
	}
}

// TestTripStore_Add verifies a new trip gets a non-empty generated id and
// otherwise equals its input.
func TestTripStore_Add(t *testing.T) {
	s := store.NewTripStore()

	got := s.Add(tripInput("Summer Vacation"))

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.NotEmpty(t, got.ID.String())
	assert.Equal(t, tripInput("Summer Vacation"), got.Input())
	assert.Equal(t, []domain.Trip{got}, s.List())
}

func TestTripStore_Update(t *testing.T) {
	s := store.NewTripStore()
	a := s.Add(tripInput("a"))
	b := s.Add(tripInput("b"))

	edited := b
	edited.Title = "b2"
	require.True(t, s.Update(edited))
	assert.Equal(t, []domain.Trip{a, edited}, s.List())

	assert.False(t, s.Update(tripInput("ghost").WithID(uuid.New())))
	assert.Equal(t, []domain.Trip{a, edited}, s.List())
}

func TestTripStore_Delete(t *testing.T) {
	s := store.NewTripStore()
	a := s.Add(tripInput("a"))
	b := s.Add(tripInput("b"))
	c := s.Add(tripInput("c"))

	require.True(t, s.Delete(b.ID))
	assert.False(t, s.Delete(b.ID))
	assert.False(t, s.Delete(uuid.New()))
	assert.Equal(t, []domain.Trip{a, c}, s.List())
}

// TestStores_TripDeleteDoesNotCascade verifies the store-level delete leaves
// dependent records alone; cascading is a service concern.
func TestStores_TripDeleteDoesNotCascade(t *testing.T) {
	s := store.New()
	trip := s.Trips.Add(tripInput("a"))
	s.Activities.Add(activityInput(trip.ID, "swim", "2024-07-01"))
	s.Notes.Add(noteInput(trip.ID, "towels"))

	require.True(t, s.Trips.Delete(trip.ID))

	assert.Equal(t, 1, s.Activities.Len())
	assert.Equal(t, 1, s.Notes.Len())
}
