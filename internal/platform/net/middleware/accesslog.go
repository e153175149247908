// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"time"

	"coursedex/internal/platform/logger"
	pnet "coursedex/internal/platform/net"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests at warn once they take this long; zero never does
	Slow time.Duration
}

// wrap reuses a writer an outer middleware already wrapped
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf treats a handler that never wrote as 200, which is what net/http sends
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}

// AccessLogZerolog writes one line per request; mount it after RequestID so
// the id lands in the logger context
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pnet.WithRequest(r.Context(), chimw.GetReqID(r.Context()))
			r = r.WithContext(ctx)
			ww := wrap(w, r)
			t0 := time.Now()

			next.ServeHTTP(ww, r)

			took := time.Since(t0)
			l := logger.C(ctx)
			e := l.Info()
			if opt.Slow > 0 && took >= opt.Slow {
				e = l.Warn()
			}
			e.Str("method", r.Method).
				Str("route", routeOf(r)).
				Str("path", r.URL.Path).
				Int("status", statusOf(ww)).
				Int("bytes", ww.BytesWritten()).
				Dur("took", took).
				Msg("http")
		})
	}
}

// routeOf is the matched pattern, so path ids stay out of label sets
func routeOf(r *http.Request) string {
	rc := chi.RouteContext(r.Context())
	if rc == nil || rc.RoutePattern() == "" {
		return "unmatched"
	}
	return rc.RoutePattern()
}
