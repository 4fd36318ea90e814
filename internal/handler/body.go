package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/tripmate/internal/handler/gen"
)

// bodyDecoders maps every operation that takes a JSON body, keyed by method
// and route pattern, to a decoder for its request type.
var bodyDecoders = map[string]func(*json.Decoder) error{
	"POST /trips":                                 decodeAs[gen.TripRequest],
	"PUT /trips/{tripId}":                         decodeAs[gen.TripRequest],
	"POST /trips/{tripId}/activities":             decodeAs[gen.ActivityRequest],
	"PUT /trips/{tripId}/activities/{activityId}": decodeAs[gen.ActivityRequest],
	"POST /trips/{tripId}/notes":                  decodeAs[gen.NoteRequest],
	"PUT /trips/{tripId}/notes/{noteId}":          decodeAs[gen.NoteRequest],
	"POST /chat/messages":                         decodeAs[gen.MessageRequest],
}

func decodeAs[T any](dec *json.Decoder) error {
	var v T
	return dec.Decode(&v)
}

// strictJSONBody rejects a request body with fields its operation does not
// define, or with anything after the first JSON value, before the generated
// decoder sees it. Accepted bodies are passed on unchanged.
func (s *Server) strictJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decode, ok := bodyDecoders[r.Method+" "+chi.RouteContext(r.Context()).RoutePattern()]
		if !ok || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(r.Body)
		if err == nil {
			err = strictDecode(raw, decode)
		}
		if err != nil {
			s.requestError(w, r, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))
		next.ServeHTTP(w, r)
	})
}

// strictDecode decodes exactly one JSON value from raw with unknown fields
// disallowed. An empty body yields io.EOF.
func strictDecode(raw []byte, decode func(*json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := decode(dec); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
