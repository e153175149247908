package store

import (
	"time"

	"coursedex/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	AppName     string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot guard knobs, zero means default
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	// Role is reported to the server as client info, e.g. "api" or "cli"
	Role string
}

// PGFromConf reads SERVICE_PGSQL_* style keys from c; URL is required when enabled
func PGFromConf(c config.Conf, enabled bool, appName string) PGConfig {
	pc := PGConfig{Enabled: enabled, AppName: appName}
	if !enabled {
		return pc
	}
	pc.URL = c.MustString("DBURL")
	pc.MaxConns = int32(c.MayInt("MAX_CONNS", 4))
	pc.SlowQueryMs = c.MayInt("SLOW_MS", 500)
	pc.LogSQL = c.MayBool("LOG_SQL", false)
	pc.ConnectRetries = c.MayInt("CONNECT_RETRIES", 20)
	pc.PingTimeout = c.MayDuration("PING_TIMEOUT", 3*time.Second)
	return pc
}

// CHFromConf reads SERVICE_CLICKHOUSE_* style keys from c; URL is required when enabled
func CHFromConf(c config.Conf, enabled bool, role string) CHConfig {
	cc := CHConfig{Enabled: enabled, Role: role}
	if enabled {
		cc.URL = c.MustString("DBURL")
	}
	return cc
}
