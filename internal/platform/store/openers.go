package store

import (
	"context"
	"fmt"
	"time"

	chx "coursedex/internal/platform/store/ch"
	"coursedex/internal/platform/store/pg"
)

const (
	defaultConnectRetries = 20
	defaultPingTimeout    = 3 * time.Second
	backoffStart          = 150 * time.Millisecond
	backoffCeiling        = 2 * time.Second
)

// openPG opens pg, pings it with backoff and publishes the adapter on s
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	pc := pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.PG.AppName,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}
	if cfg.PG.LogSQL {
		pc.Tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pc)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = defaultConnectRetries
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx) // pool directly so boot pings stay out of the sql trace
		cancel()

		if lastErr == nil {
			a := newPGAdapter(p)
			s.PG = a
			return a, nil
		}
		s.Log.Debug().Err(lastErr).Int("attempt", i+1).Dur("backoff", backoff).Msg("postgres not ready")

		select {
		case <-ctx.Done():
			p.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeiling)
	}

	p.Close()
	return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, lastErr)
}

var dialCH = func(ctx context.Context, cfg chx.Config) (chClient, error) {
	c, err := chx.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// openCH opens the clickhouse driver and publishes the adapter on s
func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := dialCH(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role})
	if err != nil {
		return nil, err
	}
	a := newCHAdapter(c)
	s.CH = a
	return a, nil
}
