// Package api provides the HTTP API for the application
package api

import (
	"coursedex/internal/platform/config"
	"coursedex/internal/platform/logger"
	phttp "coursedex/internal/platform/net/http"
	"coursedex/internal/platform/store"

	"coursedex/internal/modkit"
	"coursedex/internal/modkit/httpkit"
	"coursedex/internal/modkit/module"
	"coursedex/internal/modkit/swaggerkit"

	metamod "coursedex/internal/services/api/meta/module"
	catalogdomain "coursedex/internal/services/catalog/domain"
	catalogmod "coursedex/internal/services/catalog/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the port
// that publishes the catalog the routes read from
func Mount(r phttp.Router, opt Options) catalogdomain.LoaderPort {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG, deps.CH = opt.Store.PG, opt.Store.CH
	}

	// catalog first, meta probes its readiness
	catalog := catalogmod.New(deps)
	ready := module.MustPortsOf[catalogdomain.ReadyPort](catalog)

	mods := []modkit.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Catalog: ready})),
		catalog,
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		Origins:     opt.Config.MayCSV("CORS_ORIGINS", nil),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 0),
		MaxInFlight: opt.Config.MayInt("MAX_IN_FLIGHT", 0),
		Slow:        opt.Config.MayDuration("SLOW_REQUEST", 0),
	})

	// swagger and profiler sit beside the versioned api
	swaggerkit.Mount(r, opt.Config, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			deps.Log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})

	return module.MustPortsOf[catalogdomain.LoaderPort](catalog)
}
