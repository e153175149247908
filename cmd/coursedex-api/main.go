// Command coursedex-api serves the indexed catalog over HTTP
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursedex/internal/adapters/ingest"
	"coursedex/internal/core/version"
	"coursedex/internal/platform/config"
	"coursedex/internal/platform/logger"
	phttp "coursedex/internal/platform/net/http"
	"coursedex/internal/platform/store"
	"coursedex/internal/services/api"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		logger.Get().Error().Err(err).Msg("coursedex-api stopped")
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	catCfg := ingest.FromConf(root.Prefix("CORE_CATALOG_"))

	opt := logger.FromEnv()
	if opt.Service == "" {
		opt.Service = version.Service + "-api"
	}
	logger.Init(opt)
	l := logger.Get()

	// only the backend the catalog source needs is opened
	st, err := store.Open(ctx, catCfg.StoreConfig(root, "api"), store.WithLogger(*logger.Named("store")))
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	src, err := ingest.New(catCfg, st)
	if err != nil {
		return err
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)
	r := srv.Router()
	if apiCfg.MayBool("METRICS", true) {
		r.Handle("/metrics", promhttp.Handler())
	}

	loader := api.Mount(r, api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	errCh := make(chan error, 2)
	go func() { errCh <- srv.Run(ctx) }()

	// routes answer 503 until the catalog is published
	go func() {
		res, err := loader.Load(ctx, src)
		if err != nil {
			errCh <- err
			return
		}
		l.Info().
			Str("batch_id", res.BatchID).
			Str("source", res.Source).
			Int("offerings", res.Totals.Offerings).
			Int("conflicts", res.Totals.Conflicts).
			Dur("elapsed", res.Elapsed).
			Msg("catalog ready")
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-errCh:
	}

	grace := apiCfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
		l.Warn().Err(serr).Msg("http shutdown")
	}
	return err
}
