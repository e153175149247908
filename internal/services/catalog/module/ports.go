package module

import "coursedex/internal/services/catalog/domain"

// Ports is the catalog port set other modules and main pull from
type Ports struct {
	Catalog domain.ServicePort
	Ready   domain.ReadyPort
	Loader  domain.LoaderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
