// Command coursedex loads a course schedule, indexes it and prints the catalog reports
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"coursedex/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Get().Error().Err(err).Msg("coursedex failed")
		stop()
		os.Exit(1)
	}
}
