package middleware

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/cors"

	"github.com/davidbz/codecraft/internal/config"
	"github.com/davidbz/codecraft/internal/observability"
)

// exposedHeaders lets a browser UI read the correlation IDs set by Trace.
//
//nolint:gochecknoglobals // Fixed header list
var exposedHeaders = []string{"X-Request-Id", "X-Trace-Id"}

// CORS creates a middleware that handles Cross-Origin Resource Sharing
// using the github.com/rs/cors library. A nil config disables it.
//
// Requests carrying an Origin that is neither allowed nor the server's own
// are refused with 403 before reaching the handler, preflights included.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return func(next http.Handler) http.Handler {
		wrapped := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && !sameOrigin(r, origin) && !c.OriginAllowed(r) {
				observability.FromContext(r.Context()).Warn("cross-origin request refused",
					observability.String("origin", origin),
					observability.String("method", r.Method),
					observability.String("path", r.URL.Path),
				)
				refuseOrigin(w)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}

func sameOrigin(r *http.Request, origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host != "" && u.Host == r.Host
}

func refuseOrigin(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {"kind": "forbidden_origin", "message": "Origin not allowed"},
	})
}
