package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lisbonSeed = "../../internal/seed/testdata/lisbon.yaml"

func init() {
	color.NoColor = true
}

func TestRunCalendar_SeedFile(t *testing.T) {
	var out bytes.Buffer
	err := runCalendar(context.Background(), &out, &calendarOptions{
		Seed:  lisbonSeed,
		Date:  "2024-07-13",
		Today: time.Date(2024, time.July, 12, 10, 0, 0, 0, time.Local),
	})

	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "Lisbon Long Weekend (2024-07-12 to 2024-07-15)")
	assert.Contains(t, s, "July 2024")
	assert.Contains(t, s, "14• 15  16  17  18  19  20")
	assert.Contains(t, s, "2024-07-13\n")
	assert.Contains(t, s, "09:00  Tram 28")
	assert.Contains(t, s, "20:30  Fado dinner")
	assert.NotContains(t, s, "Sintra")
}

func TestRunCalendar_PicksTripByTitle(t *testing.T) {
	var out bytes.Buffer
	err := runCalendar(context.Background(), &out, &calendarOptions{
		Seed:  lisbonSeed,
		Trip:  "Ski Week",
		Date:  "2025-02-03",
		Today: time.Now(),
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Ski Week (2025-02-01 to 2025-02-08)")
	assert.Contains(t, out.String(), "February 2025")
	assert.Contains(t, out.String(), "No activities")
}

func TestRunCalendar_DemoTrip(t *testing.T) {
	today := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.Local)
	var out bytes.Buffer

	err := runCalendar(context.Background(), &out, &calendarOptions{Today: today})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Summer Vacation (2024-03-05 to 2024-03-12)")
	assert.Contains(t, out.String(), "2024-03-05\n  No activities")
}

func TestRunCalendar_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts calendarOptions
		want string
	}{
		{"bad date", calendarOptions{Date: "13/07/2024"}, "--date"},
		{"unknown trip", calendarOptions{Seed: lisbonSeed, Trip: "Mars"}, `no trip titled "Mars"`},
		{"missing seed", calendarOptions{Seed: "testdata/nope.yaml"}, "failed to read seed file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Today = time.Now()
			err := runCalendar(context.Background(), &bytes.Buffer{}, &tt.opts)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "calendar"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
