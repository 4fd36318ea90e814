// Package main is the tripmate command: the API server and a terminal
// calendar view over the same stores.
// Its job is wiring dependencies together. No business logic belongs here.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tripmate",
		Short:         "Plan trips: itineraries, activities, notes and a calendar",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newCalendarCmd())
	return root
}

// newLogger builds the process logger. JSON lines go to stdout for the
// server; the calendar command logs to stderr so the rendered month stays
// clean.
func newLogger(level slog.Level, w *os.File) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
