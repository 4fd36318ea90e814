package service

import (
	"log/slog"
	"sync"
	"time"
)

// Services bundles the three services over one set of stores.
//
// They share one lock: deleting a trip together with its activities and
// notes holds it exclusively, and adding an activity or note holds it
// shared from the parent-trip check to the store write. A record can
// therefore never be added to a trip whose cascade has already run.
// Store subscribers run under that lock and must not call back into the
// services.
type Services struct {
	Trips      *TripService
	Activities *ActivityService
	Notes      *NoteService
}

// New wires the services to the given stores. now supplies "today" for the
// calendar (nil means time.Now); a nil log falls back to slog.Default().
func New(trips TripStore, activities ActivityStore, notes NoteStore, now func() time.Time, log *slog.Logger) *Services {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	mu := &sync.RWMutex{}
	return &Services{
		Trips:      &TripService{mu: mu, trips: trips, activities: activities, notes: notes, log: log},
		Activities: &ActivityService{mu: mu, trips: trips, activities: activities, now: now},
		Notes:      &NoteService{mu: mu, trips: trips, notes: notes},
	}
}
