// Package modkit builds API modules from shared deps and options
package modkit

import (
	"coursedex/internal/platform/config"
	"coursedex/internal/platform/logger"
	"coursedex/internal/platform/store"
)

// Deps are the process wide handles every module may read
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  store.TxRunner
	CH  store.Clickhouse
}
