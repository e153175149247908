// Package dbsource loads course offerings from a SQL table through the store seams
//
// Rows are read in ORDER BY order, so when a table holds several rows for one
// term and section the last one read wins in the primary table.
package dbsource

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"coursedex/internal/core/catalog"
	"coursedex/internal/core/normalize"
	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/logger"
	"coursedex/internal/platform/store"
)

// Backend names accepted by New
const (
	Postgres   = "pg"
	Clickhouse = "ch"
)

// identifiers are spliced into SQL so they are checked, never quoted
var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Config names the table and the column that fixes read order
type Config struct {
	Backend string
	Table   string
	OrderBy string
}

// Source reads one table into a batch
type Source struct {
	backend string
	pg      store.TxRunner
	ch      store.Querier
	sql     string
	table   string
}

// New validates cfg and binds the matching backend from st
func New(st *store.Store, cfg Config) (*Source, error) {
	if !identRE.MatchString(cfg.Table) {
		return nil, perr.WithField(perr.InvalidArgf("invalid table name %q", cfg.Table), "table")
	}
	if !identRE.MatchString(cfg.OrderBy) {
		return nil, perr.WithField(perr.InvalidArgf("invalid order by column %q", cfg.OrderBy), "order_by")
	}
	if st == nil {
		st = &store.Store{}
	}

	s := &Source{backend: cfg.Backend, table: cfg.Table, sql: selectSQL(cfg.Table, cfg.OrderBy)}
	switch cfg.Backend {
	case Postgres:
		if st.PG == nil {
			return nil, perr.Unavailablef("postgres source selected but postgres is not configured")
		}
		s.pg = st.PG
	case Clickhouse:
		if st.CH == nil {
			return nil, perr.Unavailablef("clickhouse source selected but clickhouse is not configured")
		}
		s.ch = st.CH
	default:
		return nil, perr.WithField(perr.InvalidArgf("unknown backend %q", cfg.Backend), "backend")
	}
	return s, nil
}

func selectSQL(table, orderBy string) string {
	return fmt.Sprintf(`SELECT
	coalesce(term, ''), coalesce(section, ''), coalesce(course_code, ''),
	coalesce(instructor, ''), coalesce(schedule, '')
FROM %s
ORDER BY %s`, table, orderBy)
}

// Name identifies the source in logs and metrics
func (s *Source) Name() string { return s.backend }

// Load reads every row into a fresh batch
// postgres reads run inside one read only transaction so the snapshot is consistent
func (s *Source) Load(ctx context.Context) (*catalog.Batch, error) {
	b := catalog.NewBatch()
	ctx = logger.WithBatch(ctx, b.ID.String())
	log := logger.C(ctx).With().Str("component", "dbsource").Str("backend", s.backend).Logger()

	add := func(r store.Row) error {
		var term, section, course, instructor, schedule string
		if err := r.Scan(&term, &section, &course, &instructor, &schedule); err != nil {
			return err
		}
		b.Stats.Rows++
		off, err := catalog.NewOffering(
			normalize.Field(term), normalize.Field(section), normalize.Field(course),
			normalize.Field(instructor), normalize.Field(schedule),
		)
		if err != nil {
			b.Stats.Rejected++
			return nil
		}
		b.Add(off)
		return nil
	}

	var err error
	switch {
	case s.pg != nil:
		err = s.pg.Tx(ctx, func(q store.RowQuerier) error {
			if _, err := q.Exec(ctx, "SET TRANSACTION READ ONLY"); err != nil {
				return err
			}
			return store.Each(ctx, q, s.sql, add)
		})
	case s.ch != nil:
		err = store.Each(ctx, s.ch, s.sql, add)
	default:
		err = perr.Unavailablef("no backend bound")
	}
	if err != nil {
		if _, ok := perr.As(err); ok {
			return nil, err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "table load cancelled")
		}
		return nil, perr.WithOp(perr.FromDBf(err, "load offerings from %s", s.table), "dbsource.load")
	}

	log.Info().
		Int("rows", b.Stats.Rows).
		Int("accepted", b.Stats.Accepted).
		Int("rejected", b.Stats.Rejected).
		Int("keys", b.Len()).
		Msg("table loaded")
	return b, nil
}
