package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler"
	"github.com/pkordes/tripmate/internal/planner"
)

// ---- mock services ---------------------------------------------------------
// Set only the method fields your test needs.

type mockTripServicer struct {
	create    func(ctx context.Context, in domain.TripInput) (domain.Trip, error)
	itinerary func(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int)
	update    func(ctx context.Context, t domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, in domain.TripInput) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) Itinerary(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	return m.itinerary(ctx, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int) {
	return m.listPaged(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockActivityServicer struct {
	create     func(ctx context.Context, in domain.ActivityInput) (domain.Activity, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	onDate     func(ctx context.Context, tripID uuid.UUID, day time.Time) ([]domain.Activity, error)
	calendar   func(ctx context.Context, tripID uuid.UUID, selected time.Time) (planner.Month, error)
	update     func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	delete     func(ctx context.Context, tripID, activityID uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, in domain.ActivityInput) (domain.Activity, error) {
	return m.create(ctx, in)
}
func (m *mockActivityServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockActivityServicer) OnDate(ctx context.Context, tripID uuid.UUID, day time.Time) ([]domain.Activity, error) {
	return m.onDate(ctx, tripID, day)
}
func (m *mockActivityServicer) Calendar(ctx context.Context, tripID uuid.UUID, selected time.Time) (planner.Month, error) {
	return m.calendar(ctx, tripID, selected)
}
func (m *mockActivityServicer) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	return m.delete(ctx, tripID, activityID)
}

type mockNoteServicer struct {
	create     func(ctx context.Context, in domain.NoteInput) (domain.Note, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error)
	update     func(ctx context.Context, n domain.Note) (domain.Note, error)
	delete     func(ctx context.Context, tripID, noteID uuid.UUID) error
}

func (m *mockNoteServicer) Create(ctx context.Context, in domain.NoteInput) (domain.Note, error) {
	return m.create(ctx, in)
}
func (m *mockNoteServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockNoteServicer) Update(ctx context.Context, n domain.Note) (domain.Note, error) {
	return m.update(ctx, n)
}
func (m *mockNoteServicer) Delete(ctx context.Context, tripID, noteID uuid.UUID) error {
	return m.delete(ctx, tripID, noteID)
}

type mockChatServicer struct {
	messages func(ctx context.Context) []domain.Message
	send     func(ctx context.Context, text string) (domain.Message, bool)
}

func (m *mockChatServicer) Messages(ctx context.Context) []domain.Message {
	return m.messages(ctx)
}
func (m *mockChatServicer) Send(ctx context.Context, text string) (domain.Message, bool) {
	return m.send(ctx, text)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer     = (*mockTripServicer)(nil)
	_ handler.ActivityServicer = (*mockActivityServicer)(nil)
	_ handler.NoteServicer     = (*mockNoteServicer)(nil)
	_ handler.ChatServicer     = (*mockChatServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// services groups the dependencies of one test server; nil fields are fine
// for tests that do not reach them.
type services struct {
	trips      handler.TripServicer
	activities handler.ActivityServicer
	notes      handler.NoteServicer
	chat       handler.ChatServicer
}

// newHTTPHandler wires a Server with the given mocks into the generated
// chi router. This mirrors how main.go wires it in production.
func newHTTPHandler(s services) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(s.trips, s.activities, s.notes, s.chat, log).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decode[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Title:       "Summer Vacation",
		Description: "A relaxing beach getaway",
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-08",
	}
}

func activityFixture(tripID uuid.UUID) domain.Activity {
	return domain.Activity{
		ID:          uuid.New(),
		TripID:      tripID,
		Title:       "Snorkelling",
		Description: "Reef tour",
		StartTime:   "09:00",
		Duration:    60,
		Date:        "2024-07-02",
	}
}
