package handler

import (
	"context"
	"errors"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
	"github.com/pkordes/tripmate/internal/planner"
)

// GetCalendar handles GET /trips/{tripId}/calendar.
// ?date=yyyy-MM-dd selects the day (and so the month); it defaults to today.
func (s *Server) GetCalendar(ctx context.Context, req gen.GetCalendarRequestObject) (gen.GetCalendarResponseObject, error) {
	selected := s.now()
	if req.Params.Date != nil {
		selected = req.Params.Date.Time
	}

	m, err := s.activities.Calendar(ctx, req.TripId, selected)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetCalendar404JSONResponse(notFoundBody(err, "trip")), nil
		}
		return nil, err
	}

	return gen.GetCalendar200JSONResponse(monthToResponse(m)), nil
}

func monthToResponse(m planner.Month) gen.Calendar {
	resp := gen.Calendar{
		Title:  m.Title,
		Year:   m.Year,
		Month:  int(m.Month),
		Offset: m.Offset,
		Days:   make([]gen.CalendarDay, len(m.Days)),
	}
	for i, d := range m.Days {
		resp.Days[i] = gen.CalendarDay{
			Date:          toDate(d.Date),
			Day:           d.Day,
			Weekday:       int(d.Weekday), // Sunday == 0
			HasActivities: d.HasActivities,
			IsToday:       d.IsToday,
			IsSelected:    d.IsSelected,
		}
	}
	return resp
}
