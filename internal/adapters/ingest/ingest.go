// Package ingest picks the offering source a process loads its catalog from
package ingest

import (
	"context"

	"coursedex/internal/adapters/ingest/dbsource"
	"coursedex/internal/adapters/ingest/schedule"
	"coursedex/internal/core/catalog"
	"coursedex/internal/platform/config"
	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/store"
)

// Source kinds
const (
	KindFile = "file"
	KindPG   = dbsource.Postgres
	KindCH   = dbsource.Clickhouse
)

// Source yields one filled batch per call
type Source interface {
	Name() string
	Load(ctx context.Context) (*catalog.Batch, error)
}

// Config selects and tunes a source
type Config struct {
	Kind          string
	File          string
	Table         string
	OrderBy       string
	ProgressEvery int
}

// FromConf reads CORE_CATALOG_ style keys from c
func FromConf(c config.Conf) Config {
	return Config{
		Kind:          c.MayEnum("SOURCE", KindFile, KindFile, KindPG, KindCH),
		File:          c.MayString("FILE", "dvc-schedule.csv"),
		Table:         c.MayString("TABLE", "course_offerings"),
		OrderBy:       c.MayString("ORDER_BY", "seq"),
		ProgressEvery: c.MayInt("PROGRESS_EVERY", schedule.DefaultProgressEvery),
	}
}

// StoreConfig enables only the backend the source kind needs
// pg reads SERVICE_PGSQL_* and ch reads SERVICE_CLICKHOUSE_* from root
func (c Config) StoreConfig(root config.Conf, role string) store.Config {
	return store.Config{
		PG: store.PGFromConf(root.Prefix("SERVICE_PGSQL_"), c.Kind == KindPG, "coursedex-"+role),
		CH: store.CHFromConf(root.Prefix("SERVICE_CLICKHOUSE_"), c.Kind == KindCH, role),
	}
}

// New builds the source for c.Kind; st may be nil for file sources
func New(c Config, st *store.Store) (Source, error) {
	switch c.Kind {
	case "", KindFile:
		return schedule.File{Path: c.File, Opts: []schedule.Option{schedule.WithProgressEvery(c.ProgressEvery)}}, nil
	case KindPG, KindCH:
		return dbsource.New(st, dbsource.Config{Backend: c.Kind, Table: c.Table, OrderBy: c.OrderBy})
	}
	return nil, perr.WithField(perr.InvalidArgf("unknown catalog source %q", c.Kind), "source")
}
