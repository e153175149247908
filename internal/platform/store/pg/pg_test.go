package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"coursedex/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen(t *testing.T) {
	testkit.Serial(t)

	var got *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		got = pc
		return &pgxpool.Pool{}, nil // never used, never closed
	})

	tr := Tracer(nopLogger())
	p, err := Open(context.Background(), Config{
		URL:      "postgres://reader:pw@db:5432/catalog?sslmode=disable",
		AppName:  "coursedex-cli",
		MaxConns: 4,
		SlowMs:   250,
		Tracer:   tr,
		Tune:     func(pc *pgxpool.Config) { pc.MaxConnIdleTime = time.Minute },
	})
	if err != nil {
		t.Fatalf("Open = %v", err)
	}
	if got.MaxConns != 4 || got.MaxConnIdleTime != time.Minute {
		t.Fatalf("pool config = %d %v", got.MaxConns, got.MaxConnIdleTime)
	}
	if got.ConnConfig.RuntimeParams["application_name"] != "coursedex-cli" {
		t.Fatalf("application_name = %q", got.ConnConfig.RuntimeParams["application_name"])
	}
	if p.SlowMs != 250 || p.Tracer != tr || p.Pool == nil {
		t.Fatalf("PG = %+v", p)
	}
}

func TestOpen_Errors(t *testing.T) {
	testkit.Serial(t)

	if _, err := Open(context.Background(), Config{URL: "://bad"}); err == nil {
		t.Fatalf("expected parse error")
	}

	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("too many clients")
	})
	if _, err := Open(context.Background(), Config{URL: "postgres://db/catalog"}); err == nil {
		t.Fatalf("expected pool error")
	}
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}
