package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/davidbz/codecraft/internal/observability"
)

// Recover turns a handler panic into a 500 response with the JSON error
// envelope. It sits inside Trace so the log line carries the request ID.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // net/http aborts by identity
					panic(rec)
				}

				observability.FromContext(r.Context()).Error("handler panicked",
					observability.Any("panic", rec),
					observability.String("path", r.URL.Path),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]map[string]string{
					"error": {"kind": "internal", "message": "Internal server error"},
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
