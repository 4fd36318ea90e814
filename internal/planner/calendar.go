package planner

import (
	"time"

	"github.com/pkordes/tripmate/internal/domain"
)

// Day is one cell of the month grid.
type Day struct {
	Date          string // yyyy-MM-dd
	Day           int
	Weekday       time.Weekday
	HasActivities bool
	IsToday       bool
	IsSelected    bool
}

// Month is the calendar of the month containing the selected date.
// Days holds only the days of that month, first to last; Offset is the
// weekday of the first day (Sunday == 0) for laying them out in 7 columns.
type Month struct {
	Title  string // e.g. "July 2024"
	Year   int
	Month  time.Month
	Offset int
	Days   []Day
}

// BuildMonth computes the month view for selected. today is passed in so the
// result does not depend on the wall clock.
func BuildMonth(selected, today time.Time, activities []domain.Activity) Month {
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	n := daysIn(first)
	busy := activityDays(activities)
	selectedDate := domain.FormatDate(selected)
	todayDate := domain.FormatDate(today)

	m := Month{
		Title:  first.Format("January 2006"),
		Year:   first.Year(),
		Month:  first.Month(),
		Offset: int(first.Weekday()),
		Days:   make([]Day, n),
	}
	for i := range n {
		d := first.AddDate(0, 0, i)
		date := domain.FormatDate(d)
		_, has := busy[date]
		m.Days[i] = Day{
			Date:          date,
			Day:           i + 1,
			Weekday:       d.Weekday(),
			HasActivities: has,
			IsToday:       date == todayDate,
			IsSelected:    date == selectedDate,
		}
	}
	return m
}

// BusyDays returns the number of days in m marked as having activities.
func (m Month) BusyDays() int {
	n := 0
	for _, d := range m.Days {
		if d.HasActivities {
			n++
		}
	}
	return n
}

// daysIn returns the number of days of the month containing first.
func daysIn(first time.Time) int {
	return first.AddDate(0, 1, -1).Day()
}
