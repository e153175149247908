package modkit

import (
	"net/http"

	"coursedex/internal/modkit/httpkit"
	"coursedex/internal/modkit/module"
	str "coursedex/internal/platform/strings"
)

// Module is the contract the api mounts; it lives in package module so port
// packages can depend on it without importing modkit
type Module = module.Module

// Built is the resolved option set a module reads in its constructor
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount routes the cleaned b.Prefix with the module middleware, then registers own
// followed by any extra hook from WithRegister
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, str.MustPrefix(b.Prefix), b.Mw, func(sub httpkit.Router) {
		if b.Subrouter != nil {
			sub = b.Subrouter(sub)
		}
		own(sub)
		if b.Register != nil {
			b.Register(sub)
		}
	})
}
