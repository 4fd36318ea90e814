// Package service contains the business logic for TripMate.
// Services are the form-submission boundary: they validate input once,
// enforce the trip-ownership rules, and only then call the stores.
// Stores never fail; services turn a store's silent no-op into
// domain.ErrNotFound so callers can report it.
package service

import (
	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
)

// TripStore is the subset of store.TripStore the services need.
type TripStore interface {
	Add(in domain.TripInput) domain.Trip
	Update(t domain.Trip) bool
	Delete(id uuid.UUID) bool
	Get(id uuid.UUID) (domain.Trip, bool)
	List() []domain.Trip
}

// ActivityStore is the subset of store.ActivityStore the services need.
type ActivityStore interface {
	Add(in domain.ActivityInput) domain.Activity
	Update(a domain.Activity) bool
	Delete(tripID, activityID uuid.UUID) bool
	DeleteByTrip(tripID uuid.UUID) int
	Get(id uuid.UUID) (domain.Activity, bool)
	ListByTrip(tripID uuid.UUID) []domain.Activity
}

// NoteStore is the subset of store.NoteStore the services need.
type NoteStore interface {
	Add(in domain.NoteInput) domain.Note
	Update(n domain.Note) bool
	Delete(tripID, noteID uuid.UUID) bool
	DeleteByTrip(tripID uuid.UUID) int
	Get(id uuid.UUID) (domain.Note, bool)
	ListByTrip(tripID uuid.UUID) []domain.Note
}

// requireTrip returns ErrNotFound, wrapped with op, unless tripID exists.
func requireTrip(trips TripStore, op string, tripID uuid.UUID) error {
	if _, ok := trips.Get(tripID); !ok {
		return notFound(op, "trip", tripID)
	}
	return nil
}

func notFound(op, what string, id uuid.UUID) error {
	return &domain.NotFoundError{Op: op, What: what, ID: id}
}
