package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/codecraft/internal/config"
	"github.com/davidbz/codecraft/internal/http/middleware"
	"github.com/davidbz/codecraft/internal/observability"
)

func TestChain(t *testing.T) {
	t.Run("should apply the first middleware outermost", func(t *testing.T) {
		var order []string
		tag := func(name string) middleware.Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		handler := middleware.Chain(tag("first"), tag("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			order = append(order, "handler")
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, []string{"first", "second", "handler"}, order)
	})
}

func TestTrace(t *testing.T) {
	t.Run("should expose trace identifiers", func(t *testing.T) {
		var traceID, requestID string
		handler := middleware.Trace()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID = observability.GetTraceID(r.Context())
			requestID = observability.GetRequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusTeapot, w.Code)
		require.NotEmpty(t, traceID)
		require.NotEmpty(t, requestID)
		require.Equal(t, traceID, w.Header().Get("X-Trace-Id"))
		require.Equal(t, requestID, w.Header().Get("X-Request-Id"))
	})
}

func TestCORS(t *testing.T) {
	t.Run("should answer preflight requests", func(t *testing.T) {
		handler := middleware.CORS(&config.CORSConfig{
			AllowedOrigins:   []string{"http://localhost:5173"},
			AllowedMethods:   []string{http.MethodPost},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: false,
			MaxAge:           60,
		})(http.NotFoundHandler())

		req := httptest.NewRequest(http.MethodOptions, "/v1/generate", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("should refuse origins outside the allow list", func(t *testing.T) {
		called := false
		handler := middleware.CORS(&config.CORSConfig{
			AllowedOrigins: []string{"http://127.0.0.1:8080"},
			AllowedMethods: []string{http.MethodPut},
			AllowedHeaders: []string{"Content-Type"},
		})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))

		for _, method := range []string{http.MethodOptions, http.MethodPut} {
			req := httptest.NewRequest(method, "/v1/key", nil)
			req.Header.Set("Origin", "https://evil.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			require.Equal(t, http.StatusForbidden, w.Code, method)
			require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), method)
			require.Contains(t, w.Body.String(), "forbidden_origin")
		}
		require.False(t, called)
	})

	t.Run("should let same-origin requests through", func(t *testing.T) {
		handler := middleware.CORS(&config.CORSConfig{
			AllowedOrigins: []string{"http://127.0.0.1:8080"},
			AllowedMethods: []string{http.MethodPut},
		})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodPut, "/v1/key", nil)
		req.Host = "localhost:9999"
		req.Header.Set("Origin", "http://localhost:9999")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("should pass through without config", func(t *testing.T) {
		handler := middleware.CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRecover(t *testing.T) {
	t.Run("should convert panics into 500", func(t *testing.T) {
		handler := middleware.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		w := httptest.NewRecorder()
		require.NotPanics(t, func() {
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/generate", nil))
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.JSONEq(t, `{"error":{"kind":"internal","message":"Internal server error"}}`, w.Body.String())
	})

	t.Run("should re-panic on aborted handlers", func(t *testing.T) {
		handler := middleware.Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		require.Panics(t, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("should be part of the production chain", func(t *testing.T) {
		handler := middleware.BuildMiddlewareChain(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})
}
