// Package logger owns the process zerolog root and the context fields
// (request and batch ids) that child loggers pick up
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"coursedex/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is zerolog.Logger so call sites chain events directly
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // console or json
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* variables
func FromEnv() Options {
	env := raw.Load("LOG_")
	return Options{
		Level:       strings.ToLower(env.Str("LEVEL", "info")),
		Format:      strings.ToLower(env.Str("FORMAT", "console")),
		Service:     env.Str("SERVICE", ""),
		Component:   env.Str("COMPONENT", ""),
		WithCaller:  env.Bool("CALLER", false),
		SampleEvery: env.Int("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := build(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, configuring it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

func build(opt Options) Logger {
	out := opt.Writer
	if out == nil {
		out = os.Stdout
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	fields := map[string]string{}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields["go_version"] = bi.GoVersion
	}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}
	if opt.Service != "" {
		fields["service"] = opt.Service
	}
	if opt.Component != "" {
		fields["component"] = opt.Component
	}

	zc := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp()
	for k, v := range fields {
		zc = zc.Str(k, v)
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// parseLevel falls back to debug on anything zerolog does not know
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	if lvl, err := zerolog.ParseLevel(s); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.DebugLevel
}

type ctxKey string

// context keys double as the emitted field names
const (
	keyRequestID ctxKey = "request_id"
	keyBatchID   ctxKey = "batch_id"
)

func with(ctx context.Context, k ctxKey, v string) context.Context {
	if v == "" {
		return ctx
	}
	return context.WithValue(ctx, k, v)
}

// WithRequest tags ctx with the http request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	return with(ctx, keyRequestID, reqID)
}

// WithBatch tags ctx with the ingest batch being loaded
func WithBatch(ctx context.Context, batchID string) context.Context {
	return with(ctx, keyBatchID, batchID)
}

// RequestID is the id set by WithRequest, or empty
func RequestID(ctx context.Context) string {
	s, _ := ctx.Value(keyRequestID).(string)
	return s
}

// C returns a child of the root carrying whatever ids ctx holds
func C(ctx context.Context) *Logger {
	zc := Get().With()
	for _, k := range []ctxKey{keyRequestID, keyBatchID} {
		if s, _ := ctx.Value(k).(string); s != "" {
			zc = zc.Str(string(k), s)
		}
	}
	l := zc.Logger()
	return &l
}

// Named returns a child of the root tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
