package ch

import (
	"context"
	"errors"
	"testing"

	"coursedex/internal/platform/testkit"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "://bad"}); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}

func TestOpen_SetsClientInfoAndPropagatesOpenError(t *testing.T) {
	testkit.Serial(t)

	var seen *clickhouse.Options
	testkit.Swap(t, &openConn, func(o *clickhouse.Options) (driver.Conn, error) {
		seen = o
		return nil, errors.New("dial refused")
	})

	_, err := Open(context.Background(), Config{URL: "clickhouse://u:p@127.0.0.1:9000/courses", Role: "cli"})
	if err == nil || err.Error() != "dial refused" {
		t.Fatalf("expected open error, got %v", err)
	}
	if seen == nil {
		t.Fatalf("openConn not reached")
	}
	if len(seen.Auth.Database) == 0 || seen.Auth.Database != "courses" {
		t.Fatalf("database not parsed from DSN: %+v", seen.Auth)
	}

	var role string
	for _, p := range seen.ClientInfo.Products {
		if p.Name == "role" {
			role = p.Version
		}
	}
	if role != "cli" {
		t.Fatalf("client info role = %q, want cli", role)
	}
}

func TestBuildClientInfo_Products(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo(" api ")
	want := []string{"coursedex", "role", "commit", "go", "host"}
	if len(ci.Products) != len(want) {
		t.Fatalf("products = %+v", ci.Products)
	}
	for i, name := range want {
		if ci.Products[i].Name != name {
			t.Fatalf("product %d = %q, want %q", i, ci.Products[i].Name, name)
		}
	}
	if ci.Products[0].Version != "dev" || ci.Products[1].Version != "api" || ci.Products[2].Version != "none" {
		t.Fatalf("unexpected versions: %+v", ci.Products)
	}
}

func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var c *CH
	if err := c.Close(); err != nil {
		t.Fatalf("Close on nil returned %v", err)
	}
	if err := (&CH{}).Close(); err != nil {
		t.Fatalf("Close on empty returned %v", err)
	}
}
