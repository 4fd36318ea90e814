package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
)

// NoteService implements business logic for Note operations.
type NoteService struct {
	mu    *sync.RWMutex
	trips TripStore
	notes NoteStore
}

// Create verifies the parent trip exists, validates the form, then stores.
func (s *NoteService) Create(ctx context.Context, in domain.NoteInput) (domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := requireTrip(s.trips, "service.NoteService.Create", in.TripID); err != nil {
		return domain.Note{}, err
	}
	if err := domain.ValidateNote(in); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Create: %w", err)
	}
	return s.notes.Add(in), nil
}

// ListByTrip returns all notes of a trip in insertion order.
func (s *NoteService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Note, error) {
	if err := requireTrip(s.trips, "service.NoteService.ListByTrip", tripID); err != nil {
		return nil, err
	}
	return s.notes.ListByTrip(tripID), nil
}

// Update validates and replaces a note of the trip named by n.TripID.
func (s *NoteService) Update(ctx context.Context, n domain.Note) (domain.Note, error) {
	existing, ok := s.notes.Get(n.ID)
	if !ok || existing.TripID != n.TripID {
		return domain.Note{}, notFound("service.NoteService.Update", "note", n.ID)
	}
	if err := domain.ValidateNote(n.Input()); err != nil {
		return domain.Note{}, fmt.Errorf("service.NoteService.Update: %w", err)
	}
	if !s.notes.Update(n) {
		return domain.Note{}, notFound("service.NoteService.Update", "note", n.ID)
	}
	return n, nil
}

// Delete removes a note, scoped to the given tripID.
func (s *NoteService) Delete(ctx context.Context, tripID, noteID uuid.UUID) error {
	if !s.notes.Delete(tripID, noteID) {
		return notFound("service.NoteService.Delete", "note", noteID)
	}
	return nil
}
