// Package schedule parses the comma separated schedule export into a catalog batch
//
// Each line is term, section, course code, instructor, schedule.
// Missing trailing fields become empty strings and extra fields are ignored.
// Rows whose course code has no dash are rejected and counted, never added.
package schedule

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/normalize"
	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/logger"
)

// DefaultProgressEvery matches the dot cadence of the old console loader
const DefaultProgressEvery = 9500

// ctxEvery is how many lines pass between cancellation checks, progress or not
const ctxEvery = 1024

const (
	colTerm = iota
	colSection
	colCourse
	colInstructor
	colSchedule
	numCols
)

type options struct {
	progressEvery int
	onProgress    func(accepted int)
}

// Option tunes Parse
type Option func(*options)

// WithProgressEvery logs progress after every n accepted rows, n <= 0 disables it
func WithProgressEvery(n int) Option {
	return func(o *options) { o.progressEvery = n }
}

// WithProgress calls fn alongside each progress log line
func WithProgress(fn func(accepted int)) Option {
	return func(o *options) { o.onProgress = fn }
}

// Parse reads every row from r into a fresh batch.
// The primary table keeps the last row per term and section; the seed keeps every course code.
func Parse(ctx context.Context, r io.Reader, opts ...Option) (*catalog.Batch, error) {
	o := options{progressEvery: DefaultProgressEvery}
	for _, fn := range opts {
		fn(&o)
	}

	b := catalog.NewBatch()
	ctx = logger.WithBatch(ctx, b.ID.String())
	log := logger.C(ctx).With().Str("component", "schedule").Logger()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if line%ctxEvery == 1 {
			if err := ctx.Err(); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "schedule parse cancelled")
			}
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				b.Stats.Rows++
				b.Stats.Rejected++
				log.Debug().Err(err).Int("line", pe.Line).Msg("malformed row skipped")
				continue
			}
			return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "read schedule line %d", line)
		}
		b.Stats.Rows++

		var f [numCols]string
		for i := 0; i < numCols && i < len(rec); i++ {
			f[i] = normalize.Field(rec[i])
		}
		if f == ([numCols]string{}) {
			b.Stats.Blank++
			continue
		}

		off, err := catalog.NewOffering(f[colTerm], f[colSection], f[colCourse], f[colInstructor], f[colSchedule])
		if err != nil {
			b.Stats.Rejected++
			log.Debug().Int("line", line).Str("course_code", f[colCourse]).Msg("row rejected")
			continue
		}
		b.Add(off)

		if o.progressEvery > 0 && b.Stats.Accepted%o.progressEvery == 0 {
			log.Debug().Int("accepted", b.Stats.Accepted).Msg("parsing")
			if o.onProgress != nil {
				o.onProgress(b.Stats.Accepted)
			}
		}
	}

	log.Info().
		Int("rows", b.Stats.Rows).
		Int("accepted", b.Stats.Accepted).
		Int("rejected", b.Stats.Rejected).
		Int("blank", b.Stats.Blank).
		Int("keys", b.Len()).
		Msg("schedule parsed")
	return b, nil
}

// File loads a schedule export from disk
type File struct {
	Path string
	Opts []Option
}

// Name identifies the source in logs and metrics
func (f File) Name() string { return "file" }

// Load opens Path and parses it
func (f File) Load(ctx context.Context) (*catalog.Batch, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, perr.WithField(perr.NotFoundf("schedule file %q not found", f.Path), "path")
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open schedule %q", f.Path)
	}
	defer func() { _ = fh.Close() }()
	return Parse(ctx, fh, f.Opts...)
}
