package ch

import (
	"os"
	"runtime"
	"strings"

	"coursedex/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo tags every query with the binary build and its role
// ("api" or "cli") so system.query_log rows can be told apart
func BuildClientInfo(role string) clickhouse.ClientInfo {
	b := version.Info()
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	p := func(name, ver string) struct{ Name, Version string } {
		return struct{ Name, Version string }{strings.TrimSpace(name), strings.TrimSpace(ver)}
	}
	return clickhouse.ClientInfo{Products: []struct{ Name, Version string }{
		p(b.Service, b.Version),
		p("role", role),
		p("commit", b.Commit),
		p("go", runtime.Version()),
		p("host", host),
	}}
}
