package handler

import (
	"context"
	"errors"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
)

// CreateNote handles POST /trips/{tripId}/notes.
func (s *Server) CreateNote(ctx context.Context, req gen.CreateNoteRequestObject) (gen.CreateNoteResponseObject, error) {
	if req.Body == nil {
		return gen.CreateNote422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.notes.Create(ctx, domain.NoteInput{
		TripID:  req.TripId,
		Content: req.Body.Content,
		Date:    fromDate(req.Body.Date),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateNote404JSONResponse(notFoundBody(err, "trip")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateNote422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateNote201JSONResponse(noteToResponse(created)), nil
}

// ListNotes handles GET /trips/{tripId}/notes.
func (s *Server) ListNotes(ctx context.Context, req gen.ListNotesRequestObject) (gen.ListNotesResponseObject, error) {
	notes, err := s.notes.ListByTrip(ctx, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListNotes404JSONResponse(notFoundBody(err, "trip")), nil
		}
		return nil, err
	}

	data := make([]gen.Note, len(notes))
	for i, n := range notes {
		data[i] = noteToResponse(n)
	}
	return gen.ListNotes200JSONResponse{Data: data}, nil
}

// UpdateNote handles PUT /trips/{tripId}/notes/{noteId}.
func (s *Server) UpdateNote(ctx context.Context, req gen.UpdateNoteRequestObject) (gen.UpdateNoteResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateNote422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.notes.Update(ctx, domain.Note{
		ID:      req.NoteId,
		TripID:  req.TripId,
		Content: req.Body.Content,
		Date:    fromDate(req.Body.Date),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateNote404JSONResponse(notFoundBody(err, "note")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateNote422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateNote200JSONResponse(noteToResponse(updated)), nil
}

// DeleteNote handles DELETE /trips/{tripId}/notes/{noteId}.
func (s *Server) DeleteNote(ctx context.Context, req gen.DeleteNoteRequestObject) (gen.DeleteNoteResponseObject, error) {
	if err := s.notes.Delete(ctx, req.TripId, req.NoteId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteNote404JSONResponse(notFoundBody(err, "note")), nil
		}
		return nil, err
	}

	return gen.DeleteNote204Response{}, nil
}

func noteToResponse(n domain.Note) gen.Note {
	return gen.Note{
		Id:      n.ID,
		TripId:  n.TripID,
		Content: n.Content,
		Date:    toDate(n.Date),
	}
}
