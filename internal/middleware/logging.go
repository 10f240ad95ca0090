package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"vetstock/internal/platform/logger"
)

// HTTPObserver recibe una observación por request (métricas).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger loguea cada request con status y duración. obs puede ser nil.
func RequestLogger(log logger.Logger, obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"duration_ms": elapsed.Milliseconds(),
				"request_id":  chimw.GetReqID(r.Context()),
			}
			if c, ok := GetClaims(r.Context()); ok {
				fields["user_id"] = strconv.FormatInt(c.UserID, 10)
			}

			switch {
			case rec.status >= 500:
				log.Error("http request", fields)
			case rec.status >= 400:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}

			if obs != nil {
				obs.ObserveHTTP(r.Method, route, rec.status, elapsed)
			}
		})
	}
}
