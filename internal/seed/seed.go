// Package seed loads the starting dataset of an application instance.
// Initial data is always applied explicitly at startup, through the same
// validating services the HTTP API uses.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/tripmate/internal/domain"
)

// Dataset is the YAML shape of a seed file. Activities and notes are nested
// under their trip; ids are assigned when the dataset is applied.
type Dataset struct {
	Trips []Trip `yaml:"trips"`
}

// Trip is one seeded trip with its activities and notes.
type Trip struct {
	domain.Trip `yaml:",inline"`
	Activities  []domain.Activity `yaml:"activities"`
	Notes       []domain.Note     `yaml:"notes"`
}

// Load reads and parses a seed file.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes a seed document. Unknown keys are rejected so a typo does
// not silently drop data. An empty document is an empty dataset.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return ds, nil
}

// Demo returns the single-trip dataset used when no seed file is given:
// a week-long trip starting today.
func Demo(today time.Time) Dataset {
	return Dataset{Trips: []Trip{{
		Trip: domain.Trip{
			Title:       "Summer Vacation",
			Description: "A relaxing beach getaway",
			StartDate:   domain.FormatDate(today),
			EndDate:     domain.FormatDate(today.AddDate(0, 0, 7)),
		},
	}}}
}

// TripCreator, ActivityCreator and NoteCreator are satisfied by the
// services in package service.
type TripCreator interface {
	Create(ctx context.Context, in domain.TripInput) (domain.Trip, error)
}

type ActivityCreator interface {
	Create(ctx context.Context, in domain.ActivityInput) (domain.Activity, error)
}

type NoteCreator interface {
	Create(ctx context.Context, in domain.NoteInput) (domain.Note, error)
}

// Summary counts what Apply created.
type Summary struct {
	Trips      int
	Activities int
	Notes      int
}

// Apply creates every record of ds, in document order, stopping at the
// first invalid one. Records created before the failure are kept.
func Apply(ctx context.Context, ds Dataset, trips TripCreator, activities ActivityCreator, notes NoteCreator) (Summary, error) {
	var sum Summary
	for i, st := range ds.Trips {
		trip, err := trips.Create(ctx, st.Input())
		if err != nil {
			return sum, fmt.Errorf("trips[%d]: %w", i, err)
		}
		sum.Trips++

		for j, a := range st.Activities {
			in := a.Input()
			in.TripID = trip.ID
			if _, err := activities.Create(ctx, in); err != nil {
				return sum, fmt.Errorf("trips[%d].activities[%d]: %w", i, j, err)
			}
			sum.Activities++
		}
		for j, n := range st.Notes {
			in := n.Input()
			in.TripID = trip.ID
			if _, err := notes.Create(ctx, in); err != nil {
				return sum, fmt.Errorf("trips[%d].notes[%d]: %w", i, j, err)
			}
			sum.Notes++
		}
	}
	return sum, nil
}
