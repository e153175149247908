package pg

import (
	"context"
	"strings"

	"coursedex/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent is one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs each statement at info, slow ones at warn; it ignores the
// level of root so enabling LogSQL is enough to see statements
func Tracer(root logger.Logger) QueryTracer {
	return &zlTracer{log: root.Level(zerolog.TraceLevel).With().Str("component", "pg").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	lvl := zerolog.InfoLevel
	if ev.Slow {
		lvl = zerolog.WarnLevel
	}
	e := z.log.WithLevel(lvl).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1000).
		Bool("slow", ev.Slow)
	if id := logger.RequestID(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	e.Err(ev.Err).Msg("pg query")
}

// compact puts a multi line statement on one line
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
