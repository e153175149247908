// Package module mounts the meta endpoints
package module

import (
	"time"

	"coursedex/internal/core/version"
	modkit "coursedex/internal/modkit"
	"coursedex/internal/modkit/httpkit"
	str "coursedex/internal/platform/strings"

	metahttp "coursedex/internal/services/api/meta/http"
)

// Ports are what meta consumes from other modules
type Ports struct {
	Catalog metahttp.Readier
}

// Module is the meta module
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New builds the meta module; pass Ports through modkit.WithPorts so /ready
// can see the catalog
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)

	d := metahttp.Deps{ServiceName: version.Service, StartedAt: time.Now(), PG: deps.PG, CH: deps.CH}
	if p, ok := b.Ports.(Ports); ok {
		d.Catalog = p.Catalog
	}
	return &Module{b: b, deps: d}
}

// MountRoutes mounts health, readiness and version routes
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { metahttp.Register(sub, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports is nil, meta exports nothing
func (m *Module) Ports() any { return nil }
