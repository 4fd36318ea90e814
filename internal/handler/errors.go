package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pkordes/tripmate/internal/domain"
	"github.com/pkordes/tripmate/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource. The record
// kind comes from a *domain.NotFoundError when err carries one, otherwise
// the caller's what is used (e.g. "trip").
func notFoundBody(err error, what string) gen.ErrorResponse {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		what = nf.What
	}
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: what + " not found"}}
}

// validationBody returns an ErrorResponse for a form validation failure,
// with one entry per offending field.
func validationBody(err error) gen.ErrorResponse {
	var fe domain.FieldErrors
	if !errors.As(err, &fe) {
		return requestBody(err.Error())
	}
	msgs := make([]string, len(fe))
	fields := make([]gen.FieldError, len(fe))
	for i, f := range fe {
		msgs[i] = f.Message
		fields[i] = gen.FieldError{Field: f.Field, Message: f.Message}
	}
	return gen.ErrorResponse{Error: gen.ErrorDetail{
		Code:    "validation_error",
		Message: strings.Join(msgs, "; "),
		Fields:  &fields,
	}}
}

// requestBody returns an ErrorResponse for a request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathRecords names the record each path parameter identifies. A malformed
// id cannot name an existing record, so it is answered with 404.
var pathRecords = map[string]string{
	"tripId":     "trip",
	"activityId": "activity",
	"noteId":     "note",
}

// queryFormats describes the expected form of each query parameter.
var queryFormats = map[string]string{
	"page":  "an integer",
	"limit": "an integer",
	"date":  "a yyyy-MM-dd date",
}

// paramError answers path and query parameters the generated router could
// not bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	var pe *gen.InvalidParamFormatError
	if !errors.As(err, &pe) {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	if what, ok := pathRecords[pe.ParamName]; ok {
		writeJSON(w, http.StatusNotFound, notFoundBody(nil, what))
		return
	}
	format, ok := queryFormats[pe.ParamName]
	if !ok {
		format = "well formed"
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(pe.ParamName+" must be "+format))
}

// errTrailingData reports bytes after the JSON value of a request body.
var errTrailingData = errors.New("unexpected data after the JSON value")

// requestError answers a request body that could not be decoded.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
	case errors.Is(err, io.EOF):
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body is required"))
	default:
		s.log.DebugContext(r.Context(), "request body rejected", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body: "+bodyErrorMessage(err)))
	}
}

// responseError logs an unexpected service failure and hides it behind a
// generic 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError,
		gen.ErrorResponse{Error: gen.ErrorDetail{Code: "internal_error", Message: "internal server error"}})
}

// bodyErrorMessage drops the generated decoder's wrapping prefix.
func bodyErrorMessage(err error) string {
	return strings.TrimPrefix(err.Error(), "can't decode JSON body: ")
}
