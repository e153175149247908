package store

import (
	"context"
	"errors"
	"time"

	"coursedex/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgRunner is the statement surface *pgxpool.Pool and pgx.Tx share
type pgRunner interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// tracedPG runs statements on q and reports each one to tracer
type tracedPG struct {
	q      pgRunner
	tracer pg.QueryTracer
	slow   time.Duration // negative never flags
}

func (t tracedPG) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	t.trace(ctx, sql, args, start, err)
	return ct, err
}

func (t tracedPG) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	// timed to the open cursor, not the drained one
	t.trace(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

func (t tracedPG) trace(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if t.tracer == nil {
		return
	}
	took := time.Since(start)
	t.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: took.Microseconds(),
		Err:       err,
		Slow:      t.slow >= 0 && took >= t.slow,
	})
}

// pgAdapter is the TxRunner over a pg pool; statements inside Tx are traced too
type pgAdapter struct {
	tracedPG
	p     *pg.PG
	begin func(context.Context) (pgx.Tx, error)
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{
		tracedPG: tracedPG{q: p.Pool, tracer: p.Tracer, slow: time.Duration(p.SlowMs) * time.Millisecond},
		p:        p,
		begin:    p.Pool.Begin,
	}
}

// Tx commits when fn returns nil and rolls back otherwise, panics included
func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.begin(ctx)
	if err != nil {
		return err
	}
	// after a commit this is a no op
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tracedPG{q: tx, tracer: a.tracer, slow: a.slow}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.p == nil || a.p.Pool == nil {
		return errors.New("pg: nil adapter")
	}
	return a.p.Pool.Ping(ctx)
}

func (a *pgAdapter) Close() error {
	a.p.Close()
	return nil
}
