// Package http serves the /meta probes: health, readiness, version and uptime
package http

import (
	"context"
	"net/http"
	"time"

	"coursedex/internal/core/version"
	"coursedex/internal/modkit/httpkit"
	"coursedex/internal/platform/store"
)

// Readier reports whether the catalog has been published
type Readier interface{ Ready() bool }

// Deps feed the probes; nil backends are reported as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Catalog     Readier
	PG          any
	CH          any
}

// HealthResponse answers /meta/health; it only proves the process serves
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck is one probe: ok, fail, skipped or unknown
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadyResponse is ok, degraded when a source backend fails, or fail while
// the catalog is unpublished
type ReadyResponse struct {
	Status string       `json:"status"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse answers /meta/service
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

const readyTimeout = 2 * time.Second

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// Register mounts the probes on r
func Register(r httpkit.Router, d Deps) {
	httpkit.Get(r, "/health", func(*http.Request) (any, error) {
		return HealthResponse{OK: true, Service: d.ServiceName, Started: stamp(d.StartedAt), Now: stamp(time.Now())}, nil
	})
	httpkit.Get(r, "/ready", func(req *http.Request) (any, error) {
		return readiness(req.Context(), d), nil
	})
	httpkit.Get(r, "/version", func(*http.Request) (any, error) {
		return version.Info(), nil
	})
	httpkit.Get(r, "/service", func(*http.Request) (any, error) {
		return ServiceResponse{
			Name:    d.ServiceName,
			Started: stamp(d.StartedAt),
			Uptime:  int64(time.Since(d.StartedAt) / time.Second),
		}, nil
	})
}

func ping(ctx context.Context, name string, backend any) ReadyCheck {
	c := ReadyCheck{Name: name, Status: "unknown"}
	if backend == nil {
		c.Status = "skipped"
	} else if p, ok := backend.(store.Pinger); ok {
		c.Status = "ok"
		if err := p.Ping(ctx); err != nil {
			c.Status, c.Error = "fail", err.Error()
		}
	}
	return c
}

func readiness(ctx context.Context, d Deps) httpkit.Response {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	res := ReadyResponse{Status: "ok", Now: stamp(time.Now())}
	catalog := ReadyCheck{Name: "catalog", Status: "ok"}
	if d.Catalog == nil || !d.Catalog.Ready() {
		catalog.Status, catalog.Error = "fail", "catalog not loaded"
	}
	res.Checks = []ReadyCheck{catalog, ping(ctx, "pg", d.PG), ping(ctx, "ch", d.CH)}

	for _, c := range res.Checks[1:] {
		if c.Status == "fail" {
			res.Status = "degraded"
		}
	}
	if catalog.Status == "fail" {
		res.Status = "fail"
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: res}
	}
	return httpkit.Response{Status: http.StatusOK, Body: res}
}
