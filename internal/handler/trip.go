package handler

import (
	"context"
	"errors"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CreateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.trips.Create(ctx, requestToTrip(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	trips, total := s.trips.ListPaged(ctx, params)

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}, nil
}

// GetTrip handles GET /trips/{tripId}. The trip comes back with its
// activities and notes.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	it, err := s.trips.Itinerary(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody(err, "trip")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(itineraryToResponse(it)), nil
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.Update(ctx, requestToTrip(*req.Body).WithID(req.TripId))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTrip404JSONResponse(notFoundBody(err, "trip")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse(tripToResponse(updated)), nil
}

// DeleteTrip handles DELETE /trips/{tripId}.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	if err := s.trips.Delete(ctx, req.TripId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody(err, "trip")), nil
		}
		return nil, err
	}

	return gen.DeleteTrip204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a TripRequest body into a domain.TripInput.
func requestToTrip(body gen.TripRequest) domain.TripInput {
	return domain.TripInput{
		Title:       body.Title,
		Description: valueOr(body.Description, ""),
		StartDate:   fromDate(body.StartDate),
		EndDate:     fromDate(body.EndDate),
	}
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		StartDate:   toDate(t.StartDate),
		EndDate:     toDate(t.EndDate),
	}
}

func itineraryToResponse(it domain.Itinerary) gen.Itinerary {
	resp := gen.Itinerary{
		Id:          it.Trip.ID,
		Title:       it.Trip.Title,
		Description: it.Trip.Description,
		StartDate:   toDate(it.Trip.StartDate),
		EndDate:     toDate(it.Trip.EndDate),
		Activities:  make([]gen.Activity, len(it.Activities)),
		Notes:       make([]gen.Note, len(it.Notes)),
	}
	for i, a := range it.Activities {
		resp.Activities[i] = activityToResponse(a)
	}
	for i, n := range it.Notes {
		resp.Notes[i] = noteToResponse(n)
	}
	return resp
}
