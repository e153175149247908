package ingest

import (
	"context"
	"testing"

	"coursedex/internal/adapters/ingest/dbsource"
	"coursedex/internal/adapters/ingest/schedule"
	"coursedex/internal/platform/config"
	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/store"
	kit "coursedex/internal/platform/testkit"
)

func TestFromConf_Defaults(t *testing.T) {
	got := FromConf(config.New().Prefix("INGEST_DEFAULTS_"))
	want := Config{
		Kind:          KindFile,
		File:          "dvc-schedule.csv",
		Table:         "course_offerings",
		OrderBy:       "seq",
		ProgressEvery: schedule.DefaultProgressEvery,
	}
	if got != want {
		t.Fatalf("FromConf = %+v, want %+v", got, want)
	}
}

func TestFromConf_Overrides(t *testing.T) {
	t.Setenv("INGEST_X_SOURCE", "CH")
	t.Setenv("INGEST_X_TABLE", "catalog.offerings")
	t.Setenv("INGEST_X_PROGRESS_EVERY", "10")
	got := FromConf(config.New().Prefix("INGEST_X_"))
	if got.Kind != KindCH || got.Table != "catalog.offerings" || got.ProgressEvery != 10 {
		t.Fatalf("FromConf = %+v", got)
	}

	t.Setenv("INGEST_X_SOURCE", "s3")
	kit.MustPanic(t, func() { _ = FromConf(config.New().Prefix("INGEST_X_")) })
}

func TestStoreConfig_EnablesOnlyNeededBackend(t *testing.T) {
	root := config.New().Prefix("INGEST_SC_")

	file := Config{Kind: KindFile}.StoreConfig(root, "cli")
	if file.PG.Enabled || file.CH.Enabled {
		t.Fatalf("file source should enable no backend: %+v", file)
	}

	t.Setenv("INGEST_SC_SERVICE_PGSQL_DBURL", "postgres://localhost/courses")
	pg := Config{Kind: KindPG}.StoreConfig(root, "api")
	if !pg.PG.Enabled || pg.CH.Enabled || pg.PG.URL != "postgres://localhost/courses" || pg.PG.AppName != "coursedex-api" {
		t.Fatalf("pg store config = %+v", pg)
	}

	kit.MustPanic(t, func() { _ = Config{Kind: KindCH}.StoreConfig(root, "api") })
}

func TestNew_PicksSource(t *testing.T) {
	path := kit.WriteFile(t, "s.csv", "F23,01,CS-101,Smith,MWF\n")

	src, err := New(Config{Kind: KindFile, File: path, ProgressEvery: 1}, nil)
	if err != nil {
		t.Fatalf("New(file) = %v", err)
	}
	if src.Name() != "file" {
		t.Fatalf("Name = %q", src.Name())
	}
	b, err := src.Load(context.Background())
	if err != nil || b.Len() != 1 {
		t.Fatalf("Load = %v, %v", b, err)
	}

	if _, err := New(Config{Kind: KindPG, Table: "t", OrderBy: "seq"}, &store.Store{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("pg without store = %v", err)
	}

	db, err := New(Config{Kind: KindCH, Table: "t", OrderBy: "seq"}, &store.Store{CH: nopCH{}})
	if err != nil {
		t.Fatalf("New(ch) = %v", err)
	}
	if _, ok := db.(*dbsource.Source); !ok {
		t.Fatalf("New(ch) type = %T", db)
	}

	if _, err := New(Config{Kind: "s3"}, nil); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unknown kind = %v", err)
	}
}

type nopCH struct{}

func (nopCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (nopCH) Ping(context.Context) error                                { return nil }
func (nopCH) Close() error                                              { return nil }
