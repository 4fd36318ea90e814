package store

import (
	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
)

// TripStore owns the Trip records.
type TripStore struct {
	notifier
	items *collection[domain.Trip]
}

// NewTripStore returns an empty TripStore.
func NewTripStore() *TripStore {
	return &TripStore{items: newCollection(func(t domain.Trip) uuid.UUID { return t.ID })}
}

// Add assigns a fresh id to in, appends it and returns the stored trip.
func (s *TripStore) Add(in domain.TripInput) domain.Trip {
	t := in.WithID(uuid.New())
	s.items.add(t)
	s.publish(Event{Kind: KindTrip, Op: OpAdded, ID: t.ID, TripID: t.ID})
	return t
}

// Update replaces the trip with the same id. Reports false, changing
// nothing, when no such trip exists.
func (s *TripStore) Update(t domain.Trip) bool {
	if !s.items.replace(t) {
		return false
	}
	s.publish(Event{Kind: KindTrip, Op: OpUpdated, ID: t.ID, TripID: t.ID})
	return true
}

// Delete removes the trip with id. Activities and notes referencing it are
// left in their stores.
func (s *TripStore) Delete(id uuid.UUID) bool {
	if _, ok := s.items.remove(id, nil); !ok {
		return false
	}
	s.publish(Event{Kind: KindTrip, Op: OpDeleted, ID: id, TripID: id})
	return true
}

// Get returns the trip with id.
func (s *TripStore) Get(id uuid.UUID) (domain.Trip, bool) {
	return s.items.get(id)
}

// List returns every trip in insertion order.
func (s *TripStore) List() []domain.Trip {
	return s.items.all(nil)
}

// Len returns the number of stored trips.
func (s *TripStore) Len() int {
	return s.items.len()
}
