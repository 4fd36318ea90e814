package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
)

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var got domain.TripInput
	svc := &mockTripServicer{
		create: func(_ context.Context, in domain.TripInput) (domain.Trip, error) {
			got = in
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title":       "Summer Vacation",
		"description": "A relaxing beach getaway",
		"start_date":  "2024-07-01",
		"end_date":    "2024-07-08",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, fixture.Input(), got)

	resp := decode[gen.Trip](t, rec.Body)
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, "2024-07-08", resp.EndDate.Format(domain.DateLayout))
}

func TestCreateTrip_422_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		create: func(_ context.Context, in domain.TripInput) (domain.Trip, error) {
			return domain.Trip{}, domain.ValidateTrip(in)
		},
	}

	body := jsonBody(t, map[string]any{"title": "", "start_date": "2024-07-01"})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec.Body)
	assert.Equal(t, "validation_error", resp.Error.Code)
	require.NotNil(t, resp.Error.Fields)
	fields := *resp.Error.Fields
	require.Len(t, fields, 2)
	assert.Equal(t, gen.FieldError{Field: "title", Message: "Title is required"}, fields[0])
	assert.Equal(t, "end_date", fields[1].Field)
}

// TestCreateTrip_422_MalformedDate verifies a date that does not parse is
// rejected before the service is called.
func TestCreateTrip_422_MalformedDate(t *testing.T) {
	svc := &mockTripServicer{} // create must not be called

	body := jsonBody(t, map[string]any{"title": "x", "start_date": "July 1st"})
	req := httptest.NewRequest(http.MethodPost, "/trips", body)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateTrip_422_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(""))
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: &mockTripServicer{}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec.Body)
	assert.Equal(t, "request body is required", resp.Error.Message)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	trips := []domain.Trip{tripFixture(), tripFixture()}
	var gotParams domain.PaginationParams
	svc := &mockTripServicer{
		listPaged: func(_ context.Context, p domain.PaginationParams) ([]domain.Trip, int) {
			gotParams = p
			return trips, 12
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips?page=2&limit=2", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, Limit: 2}, gotParams)
	resp := decode[gen.TripPage](t, rec.Body)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, gen.Pagination{Page: 2, Limit: 2, Total: 12}, resp.Pagination)
}

func TestListTrips_200_Empty(t *testing.T) {
	svc := &mockTripServicer{
		listPaged: func(context.Context, domain.PaginationParams) ([]domain.Trip, int) { return []domain.Trip{}, 0 },
	}

	req := httptest.NewRequest(http.MethodGet, "/trips", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Must be a JSON array, not null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListTrips_422_BadPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips?page=two", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: &mockTripServicer{}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{tripId} ---------------------------------------------------

func TestGetTrip_200_Itinerary(t *testing.T) {
	fixture := tripFixture()
	act := activityFixture(fixture.ID)
	svc := &mockTripServicer{
		itinerary: func(_ context.Context, id uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{Trip: fixture, Activities: []domain.Activity{act}, Notes: []domain.Note{}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[gen.Itinerary](t, rec.Body)
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, "Summer Vacation", resp.Title)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, act.ID, resp.Activities[0].Id)
	assert.NotNil(t, resp.Notes)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		itinerary: func(_ context.Context, id uuid.UUID) (domain.Itinerary, error) {
			return domain.Itinerary{}, &domain.NotFoundError{Op: "test", What: "trip", ID: id}
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode[gen.ErrorResponse](t, rec.Body)
	assert.Equal(t, "not_found", resp.Error.Code)
	assert.Equal(t, "trip not found", resp.Error.Message)
}

func TestGetTrip_404_MalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: &mockTripServicer{}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /trips/{tripId} ---------------------------------------------------

func TestUpdateTrip_200(t *testing.T) {
	fixture := tripFixture()
	var got domain.Trip
	svc := &mockTripServicer{
		update: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			got = tr
			return tr, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title":      "Updated Title",
		"start_date": "2024-07-01",
		"end_date":   "2024-07-09",
	})
	req := httptest.NewRequest(http.MethodPut, "/trips/"+fixture.ID.String(), body)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, got.ID)
	assert.Equal(t, "2024-07-09", got.EndDate)
	resp := decode[gen.Trip](t, rec.Body)
	assert.Equal(t, "Updated Title", resp.Title)
}

func TestUpdateTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		update: func(_ context.Context, tr domain.Trip) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{"title": "X", "start_date": "2024-07-01", "end_date": "2024-07-01"})
	req := httptest.NewRequest(http.MethodPut, "/trips/"+uuid.New().String(), body)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /trips/{tripId} ------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(context.Context, uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(context.Context, uuid.UUID) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestDeleteTrip_500 verifies unexpected errors are hidden behind a generic
// message.
func TestDeleteTrip_500(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(context.Context, uuid.UUID) error { return assert.AnError },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(services{trips: svc}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
