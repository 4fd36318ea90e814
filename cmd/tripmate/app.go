package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/tripmate/internal/seed"
	"github.com/pkordes/tripmate/internal/service"
	"github.com/pkordes/tripmate/internal/store"
)

// app is one set of stores with the services over them.
type app struct {
	stores     *store.Stores
	trips      *service.TripService
	activities *service.ActivityService
	notes      *service.NoteService
}

func newApp(log *slog.Logger, now func() time.Time) *app {
	st := store.New()
	svc := service.New(st.Trips, st.Activities, st.Notes, now, log)
	return &app{
		stores:     st,
		trips:      svc.Trips,
		activities: svc.Activities,
		notes:      svc.Notes,
	}
}

// seed loads path into the stores, or the demo trip starting today when
// path is empty.
func (a *app) seed(ctx context.Context, path string, today time.Time) (seed.Summary, error) {
	ds := seed.Demo(today)
	if path != "" {
		var err error
		if ds, err = seed.Load(path); err != nil {
			return seed.Summary{}, err
		}
	}
	sum, err := seed.Apply(ctx, ds, a.trips, a.activities, a.notes)
	if err != nil {
		return sum, fmt.Errorf("seed %q: %w", path, err)
	}
	return sum, nil
}
