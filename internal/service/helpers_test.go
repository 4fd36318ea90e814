package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/service"
	"github.com/pkordes/tripmate/internal/store"
)

// compile-time checks: the real stores satisfy the service interfaces.
var (
	_ service.TripStore     = (*store.TripStore)(nil)
	_ service.ActivityStore = (*store.ActivityStore)(nil)
	_ service.NoteStore     = (*store.NoteStore)(nil)
)

// fixture wires every service to one fresh set of in-memory stores.
type fixture struct {
	stores     *store.Stores
	trips      *service.TripService
	activities *service.ActivityService
	notes      *service.NoteService
}

var (
	ctx   = context.Background()
	today = time.Date(2024, 7, 4, 10, 0, 0, 0, time.UTC)
)

func newFixture() fixture {
	s := store.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(s.Trips, s.Activities, s.Notes, func() time.Time { return today }, log)
	return fixture{
		stores:     s,
		trips:      svc.Trips,
		activities: svc.Activities,
		notes:      svc.Notes,
	}
}

func validTrip() domain.TripInput {
	return domain.TripInput{
		Title:       "Summer Vacation",
		Description: "A relaxing beach getaway",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-08",
	}
}

func validActivity(tripID uuid.UUID) domain.ActivityInput {
	return domain.ActivityInput{
		TripID:      tripID,
		Title:       "Snorkelling",
		Description: "Reef tour",
		StartTime:   "09:00",
		Duration:    60,
		Date:        "2024-07-02",
	}
}

func validNote(tripID uuid.UUID) domain.NoteInput {
	return domain.NoteInput{TripID: tripID, Content: "Pack sunscreen", Date: "2024-07-01"}
}
