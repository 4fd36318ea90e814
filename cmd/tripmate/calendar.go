package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/planner"
)

type calendarOptions struct {
	Seed  string
	Date  string
	Trip  string
	Today time.Time
}

func newCalendarCmd() *cobra.Command {
	o := &calendarOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a trip's month calendar and the selected day's activities",
		Example: `
tripmate calendar
tripmate calendar --seed trips.yaml --trip Lisbon --date 2024-07-02
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Today = time.Now()
			return runCalendar(cmd.Context(), cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().StringVar(&o.Seed, "seed", "", "YAML dataset to load; the demo trip when empty")
	cmd.Flags().StringVar(&o.Date, "date", "", "selected day as yyyy-MM-dd; today when empty")
	cmd.Flags().StringVar(&o.Trip, "trip", "", "trip title; the first trip when empty")
	return cmd
}

func runCalendar(ctx context.Context, w io.Writer, o *calendarOptions) error {
	selected := o.Today
	if o.Date != "" {
		var err error
		if selected, err = domain.ParseDate(o.Date); err != nil {
			return fmt.Errorf("--date must be yyyy-MM-dd: %w", err)
		}
	}

	a := newApp(newLogger(slog.LevelWarn, os.Stderr), func() time.Time { return o.Today })
	if _, err := a.seed(ctx, o.Seed, o.Today); err != nil {
		return err
	}

	trips := a.trips.List(ctx)
	if len(trips) == 0 {
		return errors.New("no trips loaded")
	}
	i := 0
	if o.Trip != "" {
		i = slices.IndexFunc(trips, func(t domain.Trip) bool { return t.Title == o.Trip })
		if i < 0 {
			return fmt.Errorf("no trip titled %q", o.Trip)
		}
	}
	trip := trips[i]

	month, err := a.activities.Calendar(ctx, trip.ID, selected)
	if err != nil {
		return err
	}
	day, err := a.activities.OnDate(ctx, trip.ID, selected)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s to %s)\n\n", trip.Title, trip.StartDate, trip.EndDate)
	if err := planner.RenderMonth(w, month); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return planner.RenderDay(w, selected, day)
}
