package middleware

import (
	"io"
	"net/http"
)

// tooLargeBody matches the API error envelope the handlers write.
const tooLargeBody = `{"error":{"code":"validation_error","message":"request body too large"}}` + "\n"

// NewMaxBodySizeHandler limits request bodies to limit bytes.
// A request whose Content-Length already exceeds the limit is answered with
// 413 without reaching next. Otherwise the body is wrapped in
// http.MaxBytesReader, so a streamed body fails on read once it passes the
// limit and the handler's decoder reports 413 itself.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = io.WriteString(w, tooLargeBody)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
