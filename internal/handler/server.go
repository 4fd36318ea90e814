// Package handler implements the HTTP handlers for the TripMate API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource-specific files (trip.go, activity.go, ...)
// but all share the same Server struct so they can access its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config gen/cfg.yaml ../../api/openapi.yaml

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tripmate/api"
	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
	"github.com/pkordes/tripmate/internal/planner"
)

// TripServicer defines the trip operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the stores.
type TripServicer interface {
	Create(ctx context.Context, in domain.TripInput) (domain.Trip, error)
	Itinerary(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int)
	Update(ctx context.Context, t domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityServicer defines the activity operations and derived views.
type ActivityServicer interface {
	Create(ctx context.Context, in domain.ActivityInput) (domain.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	OnDate(ctx context.Context, tripID uuid.UUID, day time.Time) ([]domain.Activity, error)
	Calendar(ctx context.Context, tripID uuid.UUID, selected time.Time) (planner.Month, error)
	Update(ctx context.Context, a domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// NoteServicer defines the note operations.
type NoteServicer interface {
	Create(ctx context.Context, in domain.NoteInput) (domain.Note, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error)
	Update(ctx context.Context, n domain.Note) (domain.Note, error)
	Delete(ctx context.Context, tripID, noteID uuid.UUID) error
}

// ChatServicer is the assistant conversation.
type ChatServicer interface {
	Messages(ctx context.Context) []domain.Message
	Send(ctx context.Context, text string) (domain.Message, bool)
}

// compile-time check: Server must implement every generated operation.
var _ gen.StrictServerInterface = (*Server)(nil)

// Server implements gen.StrictServerInterface for all API endpoints.
// Mount it with Routes, which wires it through gen.NewStrictHandlerWithOptions.
type Server struct {
	trips      TripServicer
	activities ActivityServicer
	notes      NoteServicer
	chat       ChatServicer
	log        *slog.Logger
	now        func() time.Time
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, activities ActivityServicer, notes NoteServicer, chat ChatServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		trips:      trips,
		activities: activities,
		notes:      notes,
		chat:       chat,
		log:        log,
		now:        time.Now,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes returns the router for the whole API: the generated routes plus
// the OpenAPI document itself.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/openapi.yaml", s.GetOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{s.strictJSONBody},
		ErrorHandlerFunc: s.paramError,
	})
	return r
}

// GetOpenAPI handles GET /openapi.yaml. It is registered outside the
// generated router because the document is not JSON.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(api.OpenAPI)
}
