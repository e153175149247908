package main

import (
	"context"
	"os"
	"strings"

	"coursedex/internal/adapters/ingest"
	"coursedex/internal/core/query"
	"coursedex/internal/core/version"
	"coursedex/internal/platform/config"
	"coursedex/internal/platform/logger"
	"coursedex/internal/platform/store"
	catsvc "coursedex/internal/services/catalog/service"

	"github.com/spf13/cobra"
)

// sourceFlags override CORE_CATALOG_* when set on the command line
type sourceFlags struct {
	source  string
	file    string
	table   string
	orderBy string
}

func newRootCmd() *cobra.Command {
	var sf sourceFlags

	root := &cobra.Command{
		Use:           "coursedex",
		Short:         "Index a course schedule and browse its reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// logs go to stderr so report output stays clean
			opt := logger.FromEnv()
			opt.Writer = os.Stderr
			if opt.Service == "" {
				opt.Service = version.Service
			}
			logger.Init(opt)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&sf.source, "source", "", "offering source: file, pg or ch (env CORE_CATALOG_SOURCE)")
	pf.StringVarP(&sf.file, "file", "f", "", "schedule csv path (env CORE_CATALOG_FILE)")
	pf.StringVar(&sf.table, "table", "", "offering table for pg and ch sources (env CORE_CATALOG_TABLE)")
	pf.StringVar(&sf.orderBy, "order-by", "", "column giving row order for pg and ch sources (env CORE_CATALOG_ORDER_BY)")

	root.AddCommand(
		newMenuCmd(&sf),
		newReportCmd(&sf),
		newVersionCmd(),
	)
	return root
}

// apply layers the flags over cfg
func (sf sourceFlags) apply(cfg ingest.Config) ingest.Config {
	if sf.source != "" {
		cfg.Kind = strings.ToLower(sf.source)
	}
	if sf.file != "" {
		cfg.File = sf.file
	}
	if sf.table != "" {
		cfg.Table = sf.table
	}
	if sf.orderBy != "" {
		cfg.OrderBy = sf.orderBy
	}
	return cfg
}

// loadEngine opens the configured source and builds the catalog
func loadEngine(ctx context.Context, sf sourceFlags) (*query.Engine, error) {
	root := config.New()
	cfg := sf.apply(ingest.FromConf(root.Prefix("CORE_CATALOG_")))

	st, err := store.Open(ctx, cfg.StoreConfig(root, "cli"), store.WithLogger(*logger.Named("store")))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			logger.Get().Warn().Err(err).Msg("store close failed")
		}
	}()

	src, err := ingest.New(cfg, st)
	if err != nil {
		return nil, err
	}

	svc := catsvc.New()
	if _, err := svc.Load(ctx, src); err != nil {
		return nil, err
	}
	return svc.Engine()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(version.Info().String() + "\n"))
			return err
		},
	}
}
