package store

import (
	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
)

// NoteStore owns the Note records of every trip.
type NoteStore struct {
	notifier
	items *collection[domain.Note]
}

// NewNoteStore returns an empty NoteStore.
func NewNoteStore() *NoteStore {
	return &NoteStore{items: newCollection(func(n domain.Note) uuid.UUID { return n.ID })}
}

func (s *NoteStore) Add(in domain.NoteInput) domain.Note {
	n := in.WithID(uuid.New())
	s.items.add(n)
	s.publish(Event{Kind: KindNote, Op: OpAdded, ID: n.ID, TripID: n.TripID})
	return n
}

func (s *NoteStore) Update(n domain.Note) bool {
	if !s.items.replace(n) {
		return false
	}
	s.publish(Event{Kind: KindNote, Op: OpUpdated, ID: n.ID, TripID: n.TripID})
	return true
}

// Delete removes the note only if both tripID and noteID match.
func (s *NoteStore) Delete(tripID, noteID uuid.UUID) bool {
	_, ok := s.items.remove(noteID, func(n domain.Note) bool { return n.TripID == tripID })
	if !ok {
		return false
	}
	s.publish(Event{Kind: KindNote, Op: OpDeleted, ID: noteID, TripID: tripID})
	return true
}

func (s *NoteStore) DeleteByTrip(tripID uuid.UUID) int {
	gone := s.items.removeWhere(func(n domain.Note) bool { return n.TripID == tripID })
	for _, n := range gone {
		s.publish(Event{Kind: KindNote, Op: OpDeleted, ID: n.ID, TripID: tripID})
	}
	return len(gone)
}

func (s *NoteStore) Get(id uuid.UUID) (domain.Note, bool) {
	return s.items.get(id)
}

func (s *NoteStore) List() []domain.Note {
	return s.items.all(nil)
}

func (s *NoteStore) ListByTrip(tripID uuid.UUID) []domain.Note {
	return s.items.all(func(n domain.Note) bool { return n.TripID == tripID })
}

func (s *NoteStore) Len() int {
	return s.items.len()
}
