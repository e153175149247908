// Package module wires the catalog into the API using modkit
package module

import (
	modkit "coursedex/internal/modkit"
	"coursedex/internal/modkit/httpkit"
	str "coursedex/internal/platform/strings"
	cathttp "coursedex/internal/services/catalog/http"
	catsvc "coursedex/internal/services/catalog/service"
)

// Module is the catalog module
type Module struct {
	b     modkit.Built
	svc   catsvc.Service
	ports Ports
}

// New constructs the catalog module with an empty service
// routes answer 503 until the Loader port publishes a catalog
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("catalog"), modkit.WithPrefix("/catalog")}, opts...)...)
	svc := catsvc.New()
	return &Module{
		b:     b,
		svc:   svc,
		ports: Ports{Catalog: svc, Ready: svc, Loader: svc},
	}
}

// MountRoutes mounts the catalog routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(sub httpkit.Router) { cathttp.Register(sub, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }
