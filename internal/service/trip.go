package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
)

// TripService implements business logic for Trip operations.
// It holds the activity and note stores as well because deleting a trip
// removes everything that belongs to it.
type TripService struct {
	mu         *sync.RWMutex
	trips      TripStore
	activities ActivityStore
	notes      NoteStore
	log        *slog.Logger
}

// Create validates and stores a new trip.
// Returns an error wrapping domain.ErrValidation if the form is invalid.
func (s *TripService) Create(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	if err := domain.ValidateTrip(in); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return s.trips.Add(in), nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	t, ok := s.trips.Get(id)
	if !ok {
		return domain.Trip{}, notFound("service.TripService.GetByID", "trip", id)
	}
	return t, nil
}

// Itinerary returns the trip together with its activities and notes.
func (s *TripService) Itinerary(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trips.Get(id)
	if !ok {
		return domain.Itinerary{}, notFound("service.TripService.Itinerary", "trip", id)
	}
	return domain.Itinerary{
		Trip:       t,
		Activities: s.activities.ListByTrip(id),
		Notes:      s.notes.ListByTrip(id),
	}, nil
}

// List returns all trips in the order they were added.
func (s *TripService) List(ctx context.Context) []domain.Trip {
	return s.trips.List()
}

// ListPaged returns one page of trips and the total number of trips.
// Always returns a non-nil slice.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int) {
	all := s.trips.List()
	lo, hi := p.Window(len(all))
	return append([]domain.Trip{}, all[lo:hi]...), len(all)
}

// Update validates and replaces an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if err := domain.ValidateTrip(t.Input()); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if !s.trips.Update(t) {
		return domain.Trip{}, notFound("service.TripService.Update", "trip", t.ID)
	}
	return t, nil
}

// Delete removes a trip and then every activity and note that referenced it.
// No activity or note can be added to the trip while this runs.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.trips.Delete(id) {
		return notFound("service.TripService.Delete", "trip", id)
	}
	activities := s.activities.DeleteByTrip(id)
	notes := s.notes.DeleteByTrip(id)
	s.log.InfoContext(ctx, "trip deleted", "trip_id", id, "activities_removed", activities, "notes_removed", notes)
	return nil
}
