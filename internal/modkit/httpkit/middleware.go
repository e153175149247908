package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"coursedex/internal/platform/net/middleware"
)

// StackOptions tunes the shared middleware stack
type StackOptions struct {
	// Origins allowed by CORS, empty means any
	Origins []string
	// Timeout caps each request, 0 means 30s
	Timeout time.Duration
	// MaxInFlight throttles concurrent requests, 0 disables throttling
	MaxInFlight int
	// Slow marks access log lines as warn at or above this duration
	Slow time.Duration
}

// CommonStack returns the baseline middleware slice for the API router
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.Metrics,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/ping"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
		middleware.Throttle(o.MaxInFlight),
	}
}
