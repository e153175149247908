// Package store opens the optional SQL backends an offering source can read
// from and hides their drivers behind a few small interfaces
package store

import (
	"context"
	"errors"
	"fmt"

	"coursedex/internal/platform/logger"
)

// Store holds the backends that were enabled; the zero value has none
type Store struct {
	Log logger.Logger

	PG TxRunner   // nil unless postgres is enabled
	CH Clickhouse // nil unless clickhouse is enabled
}

// Row is one scannable result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a forward only cursor; pgx.Rows satisfies it as is
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
}

// CommandTag reports what a statement did; pgconn.CommandTag satisfies it
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// Querier is the read surface every backend has
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// RowQuerier adds statements for backends with sessions
type RowQuerier interface {
	Querier
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
}

// TxRunner runs fn inside one transaction, committing when fn returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar read seam
type Clickhouse interface {
	Querier
	Ping(ctx context.Context) error
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Option adjusts a Store before backends open
type Option func(*Store) error

// WithLogger sets the logger handed to backend clients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error { s.Log = log; return nil }
}

// Open connects the backends cfg enables, postgres first; when one fails the
// ones already open are closed again
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		if _, err := openPG(ctx, cfg, s); err != nil {
			return nil, err
		}
	}
	if cfg.CH.Enabled {
		if _, err := openCH(ctx, cfg, s); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
	}
	return s, nil
}

type backend struct {
	name string
	seam any
}

// backends lists the open backends, postgres first
func (s *Store) backends() []backend {
	var out []backend
	if s.PG != nil {
		out = append(out, backend{"pg", s.PG})
	}
	if s.CH != nil {
		out = append(out, backend{"ch", s.CH})
	}
	return out
}

// Guard pings every open backend that can be pinged and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, b := range s.backends() {
		p, ok := b.seam.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every open backend
func (s *Store) Close(_ context.Context) error {
	var errs []error
	for _, b := range s.backends() {
		if c, ok := b.seam.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
