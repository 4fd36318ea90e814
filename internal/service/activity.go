package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/planner"
)

// ActivityService implements business logic for Activity operations and
// the views derived from them.
type ActivityService struct {
	mu         *sync.RWMutex
	trips      TripStore
	activities ActivityStore
	now        func() time.Time
}

// Create verifies the parent trip exists, validates the form, then stores.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if input violates a form rule.
func (s *ActivityService) Create(ctx context.Context, in domain.ActivityInput) (domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := requireTrip(s.trips, "service.ActivityService.Create", in.TripID); err != nil {
		return domain.Activity{}, err
	}
	if err := domain.ValidateActivity(in); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return s.activities.Add(in), nil
}

// ListByTrip returns all activities of a trip in insertion order.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	if err := requireTrip(s.trips, "service.ActivityService.ListByTrip", tripID); err != nil {
		return nil, err
	}
	return s.activities.ListByTrip(tripID), nil
}

// OnDate returns the trip's activities scheduled on day.
// Always returns a non-nil slice on success.
func (s *ActivityService) OnDate(ctx context.Context, tripID uuid.UUID, day time.Time) ([]domain.Activity, error) {
	if err := requireTrip(s.trips, "service.ActivityService.OnDate", tripID); err != nil {
		return nil, err
	}
	out := slices.Collect(planner.OnDate(s.activities.ListByTrip(tripID), day))
	if out == nil {
		out = []domain.Activity{}
	}
	return out, nil
}

// Calendar returns the month view containing selected for one trip.
func (s *ActivityService) Calendar(ctx context.Context, tripID uuid.UUID, selected time.Time) (planner.Month, error) {
	if err := requireTrip(s.trips, "service.ActivityService.Calendar", tripID); err != nil {
		return planner.Month{}, err
	}
	return planner.BuildMonth(selected, s.now(), s.activities.ListByTrip(tripID)), nil
}

// Update validates and replaces an activity of the trip named by a.TripID.
// An activity that exists under another trip is reported as not found.
func (s *ActivityService) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	existing, ok := s.activities.Get(a.ID)
	if !ok || existing.TripID != a.TripID {
		return domain.Activity{}, notFound("service.ActivityService.Update", "activity", a.ID)
	}
	if err := domain.ValidateActivity(a.Input()); err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	if !s.activities.Update(a) {
		// Deleted between Get and Update.
		return domain.Activity{}, notFound("service.ActivityService.Update", "activity", a.ID)
	}
	return a, nil
}

// Delete removes an activity, scoped to the given tripID.
func (s *ActivityService) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	if !s.activities.Delete(tripID, activityID) {
		return notFound("service.ActivityService.Delete", "activity", activityID)
	}
	return nil
}
