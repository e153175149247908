package middleware

import (
	"net/http"
	"time"

	pstrings "coursedex/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Mw is one layer of the handler stack
type Mw = func(http.Handler) http.Handler

func pass(next http.Handler) http.Handler { return next }

// chi middlewares under names that keep chi out of module imports
func RequestID() Mw    { return chimw.RequestID }
func RealIP() Mw       { return chimw.RealIP }
func NoCache() Mw      { return chimw.NoCache }
func StripSlashes() Mw { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Mw { return chimw.Heartbeat(path) }

// Timeout cancels the request context after d; zero leaves it alone
func Timeout(d time.Duration) Mw {
	if d <= 0 {
		return pass
	}
	return chimw.Timeout(d)
}

// Compress gzips or deflates responses at level, e.g. flate.BestSpeed
func Compress(level int) Mw { return chimw.NewCompressor(level).Handler }

// Throttle caps requests in flight; zero leaves it off
func Throttle(limit int) Mw {
	if limit <= 0 {
		return pass
	}
	return chimw.Throttle(limit)
}

// CORSOptions is the part of go-chi/cors we configure; empty lists take
// read only defaults
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// CORS builds the go-chi/cors handler
func CORS(o CORSOptions) Mw {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
