// Package module holds the module contract and port lookup
package module

import phttp "coursedex/internal/platform/net/http"

// Module mounts routes and exposes the ports other modules consume
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
