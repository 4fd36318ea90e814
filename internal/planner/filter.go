// Package planner derives the read-only views shown alongside the stores:
// the activities of the selected day and the month calendar.
// Everything here is a pure function of its arguments and is recomputed on
// every request.
package planner

import (
	"iter"
	"time"

	"github.com/pkordes/tripmate/internal/domain"
)

// OnDate yields, in collection order, the activities whose Date equals day
// formatted as yyyy-MM-dd. Nothing is evaluated until the sequence is ranged.
func OnDate(activities []domain.Activity, day time.Time) iter.Seq[domain.Activity] {
	want := domain.FormatDate(day)
	return func(yield func(domain.Activity) bool) {
		for _, a := range activities {
			if a.Date != want {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// activityDays returns the set of dates that have at least one activity.
func activityDays(activities []domain.Activity) map[string]struct{} {
	days := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		days[a.Date] = struct{}{}
	}
	return days
}
