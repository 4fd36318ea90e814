package handler_test

import (
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripmate/internal/chat"
	"github.com/pkordes/tripmate/internal/handler"
	"github.com/pkordes/tripmate/internal/handler/gen"
	"github.com/pkordes/tripmate/internal/service"
	"github.com/pkordes/tripmate/internal/store"
)

// newApp wires the real stores, services and assistant behind the router.
func newApp(t *testing.T) (http.Handler, *chat.Assistant) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New()
	assistant := chat.New(chat.WithReplyDelay(time.Millisecond), chat.WithLogger(log))
	t.Cleanup(assistant.Wait)

	svc := service.New(st.Trips, st.Activities, st.Notes, nil, log)
	srv := handler.NewServer(svc.Trips, svc.Activities, svc.Notes, assistant, log)
	return srv.Routes(), assistant
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = jsonBody(t, body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, r))
	return rec
}

func TestRoutes_TripLifecycle(t *testing.T) {
	h, _ := newApp(t)

	rec := do(t, h, http.MethodPost, "/trips", map[string]any{
		"title":       "Lisbon",
		"description": "Long weekend",
		"start_date":  "2024-07-01",
		"end_date":    "2024-07-04",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	trip := decode[gen.Trip](t, rec.Body)
	base := "/trips/" + trip.Id.String()

	rec = do(t, h, http.MethodPost, base+"/activities", map[string]any{
		"title": "Tram 28", "date": "2024-07-02",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	tram := decode[gen.Activity](t, rec.Body)
	assert.Equal(t, "09:00", tram.StartTime)
	assert.Equal(t, 60, tram.Duration)

	rec = do(t, h, http.MethodPost, base+"/activities", map[string]any{
		"title": "Fado", "start_time": "21:00", "duration": 120, "date": "2024-07-03",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/notes", map[string]any{
		"content": "Buy a Viva Viagem card", "date": "2024-07-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, base+"/activities?date=2024-07-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	onDay := decode[gen.ActivityList](t, rec.Body)
	require.Len(t, onDay.Data, 1)
	assert.Equal(t, tram.Id, onDay.Data[0].Id)

	rec = do(t, h, http.MethodGet, base+"/calendar?date=2024-07-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cal := decode[gen.Calendar](t, rec.Body)
	busy := []int{}
	for _, d := range cal.Days {
		if d.HasActivities {
			busy = append(busy, d.Day)
		}
	}
	assert.Equal(t, []int{2, 3}, busy)

	rec = do(t, h, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	it := decode[gen.Itinerary](t, rec.Body)
	assert.Len(t, it.Activities, 2)
	assert.Len(t, it.Notes, 1)

	rec = do(t, h, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The trip's activities went with it.
	rec = do(t, h, http.MethodGet, base+"/activities", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodGet, "/trips", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[gen.TripPage](t, rec.Body).Data)
}

func TestRoutes_OrphanActivityRejected(t *testing.T) {
	h, _ := newApp(t)

	rec := do(t, h, http.MethodPost, "/trips/00000000-0000-0000-0000-000000000001/activities", map[string]any{
		"title": "Nowhere", "date": "2024-07-02",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip not found", decode[gen.ErrorResponse](t, rec.Body).Error.Message)
}

func TestRoutes_Chat(t *testing.T) {
	h, assistant := newApp(t)

	rec := do(t, h, http.MethodPost, "/chat/messages", map[string]any{"text": "Hello"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assistant.Wait()

	rec = do(t, h, http.MethodGet, "/chat/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	msgs := decode[gen.MessageList](t, rec.Body).Data
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.Greeting, msgs[0].Text)
	assert.Equal(t, "Hello", msgs[1].Text)
	assert.Equal(t, chat.Reply, msgs[2].Text)
}

// TestRoutes_ListTrips_FarPage verifies a page number too large to address
// yields an empty page, not a failure.
func TestRoutes_ListTrips_FarPage(t *testing.T) {
	h, _ := newApp(t)
	for _, title := range []string{"Lisbon", "Porto"} {
		rec := do(t, h, http.MethodPost, "/trips", map[string]any{
			"title": title, "start_date": "2024-07-01", "end_date": "2024-07-04",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/trips?page=9223372036854775807&limit=100", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[gen.TripPage](t, rec.Body)
	assert.Empty(t, page.Data)
	assert.Equal(t, gen.Pagination{Page: math.MaxInt, Limit: 100, Total: 2}, page.Pagination)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
