package handler

import (
	"context"
	"errors"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
)

// CreateActivity handles POST /trips/{tripId}/activities.
// A missing start_time or duration takes the form defaults (09:00, 60 minutes).
func (s *Server) CreateActivity(ctx context.Context, req gen.CreateActivityRequestObject) (gen.CreateActivityResponseObject, error) {
	if req.Body == nil {
		return gen.CreateActivity422JSONResponse(requestBody("request body is required")), nil
	}
	body := *req.Body
	if body.StartTime == nil {
		st := domain.DefaultStartTime
		body.StartTime = &st
	}
	if body.Duration == nil {
		d := domain.DefaultDuration
		body.Duration = &d
	}

	in := requestToActivity(body)
	in.TripID = req.TripId
	created, err := s.activities.Create(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateActivity404JSONResponse(notFoundBody(err, "trip")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateActivity422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateActivity201JSONResponse(activityToResponse(created)), nil
}

// ListActivities handles GET /trips/{tripId}/activities.
// With ?date=yyyy-MM-dd only that day's activities are returned.
func (s *Server) ListActivities(ctx context.Context, req gen.ListActivitiesRequestObject) (gen.ListActivitiesResponseObject, error) {
	var (
		activities []domain.Activity
		err        error
	)
	if req.Params.Date != nil {
		activities, err = s.activities.OnDate(ctx, req.TripId, req.Params.Date.Time)
	} else {
		activities, err = s.activities.ListByTrip(ctx, req.TripId)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListActivities404JSONResponse(notFoundBody(err, "trip")), nil
		}
		return nil, err
	}

	data := make([]gen.Activity, len(activities))
	for i, a := range activities {
		data[i] = activityToResponse(a)
	}
	return gen.ListActivities200JSONResponse{Data: data}, nil
}

// UpdateActivity handles PUT /trips/{tripId}/activities/{activityId}.
func (s *Server) UpdateActivity(ctx context.Context, req gen.UpdateActivityRequestObject) (gen.UpdateActivityResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateActivity422JSONResponse(requestBody("request body is required")), nil
	}

	in := requestToActivity(*req.Body)
	in.TripID = req.TripId
	updated, err := s.activities.Update(ctx, in.WithID(req.ActivityId))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateActivity404JSONResponse(notFoundBody(err, "activity")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateActivity422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateActivity200JSONResponse(activityToResponse(updated)), nil
}

// DeleteActivity handles DELETE /trips/{tripId}/activities/{activityId}.
func (s *Server) DeleteActivity(ctx context.Context, req gen.DeleteActivityRequestObject) (gen.DeleteActivityResponseObject, error) {
	if err := s.activities.Delete(ctx, req.TripId, req.ActivityId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteActivity404JSONResponse(notFoundBody(err, "activity")), nil
		}
		return nil, err
	}

	return gen.DeleteActivity204Response{}, nil
}

// requestToActivity converts the body into an ActivityInput without a trip.
func requestToActivity(body gen.ActivityRequest) domain.ActivityInput {
	return domain.ActivityInput{
		Title:       body.Title,
		Description: valueOr(body.Description, ""),
		StartTime:   valueOr(body.StartTime, ""),
		Duration:    valueOr(body.Duration, 0),
		Date:        fromDate(body.Date),
	}
}

func activityToResponse(a domain.Activity) gen.Activity {
	return gen.Activity{
		Id:          a.ID,
		TripId:      a.TripID,
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		Duration:    a.Duration,
		Date:        toDate(a.Date),
	}
}
