package store

import (
	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
)

// ActivityStore owns the Activity records of every trip, each tagged with
// its TripID.
type ActivityStore struct {
	notifier
	items *collection[domain.Activity]
}

// NewActivityStore returns an empty ActivityStore.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{items: newCollection(func(a domain.Activity) uuid.UUID { return a.ID })}
}

// Add assigns a fresh id to in, appends it and returns the stored activity.
// The TripID is taken as given.
func (s *ActivityStore) Add(in domain.ActivityInput) domain.Activity {
	a := in.WithID(uuid.New())
	s.items.add(a)
	s.publish(Event{Kind: KindActivity, Op: OpAdded, ID: a.ID, TripID: a.TripID})
	return a
}

// Update replaces the activity with the same id, keeping its position.
// Reports false when no such activity exists.
func (s *ActivityStore) Update(a domain.Activity) bool {
	if !s.items.replace(a) {
		return false
	}
	s.publish(Event{Kind: KindActivity, Op: OpUpdated, ID: a.ID, TripID: a.TripID})
	return true
}

// Delete removes the activity only if both tripID and activityID match.
func (s *ActivityStore) Delete(tripID, activityID uuid.UUID) bool {
	_, ok := s.items.remove(activityID, func(a domain.Activity) bool { return a.TripID == tripID })
	if !ok {
		return false
	}
	s.publish(Event{Kind: KindActivity, Op: OpDeleted, ID: activityID, TripID: tripID})
	return true
}

// DeleteByTrip removes every activity of tripID and returns how many went.
func (s *ActivityStore) DeleteByTrip(tripID uuid.UUID) int {
	gone := s.items.removeWhere(func(a domain.Activity) bool { return a.TripID == tripID })
	for _, a := range gone {
		s.publish(Event{Kind: KindActivity, Op: OpDeleted, ID: a.ID, TripID: tripID})
	}
	return len(gone)
}

// Get returns the activity with id.
func (s *ActivityStore) Get(id uuid.UUID) (domain.Activity, bool) {
	return s.items.get(id)
}

// List returns every activity in insertion order.
func (s *ActivityStore) List() []domain.Activity {
	return s.items.all(nil)
}

// ListByTrip returns the activities of tripID in insertion order.
func (s *ActivityStore) ListByTrip(tripID uuid.UUID) []domain.Activity {
	return s.items.all(func(a domain.Activity) bool { return a.TripID == tripID })
}

// Len returns the number of stored activities.
func (s *ActivityStore) Len() int {
	return s.items.len()
}
