package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"coursedex/internal/platform/config"
	perr "coursedex/internal/platform/errors"
	"coursedex/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the root chi mux and the listener serving it
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer reads ADDR, else PORT (default :4000), and the READ_HEADER,
// WRITE and IDLE timeouts from cfg; opts see the mux before any route exists
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("ADDR", "")
	if addr == "" {
		addr = cfg.MayPort("PORT", ":4000")
	}

	mux := chi.NewRouter()
	mux.NotFound(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.NotFoundf("no route for %s", r.URL.Path))
	})
	mux.MethodNotAllowed(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		RespondError(w, r, perr.InvalidArgf("%s is not served on %s", r.Method, r.URL.Path))
	})
	for _, fn := range opts {
		fn(mux)
	}

	return &Server{mux: mux, srv: &stdhttp.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
	}}
}

// Router is the mux seen through the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until Shutdown, which makes it return nil, or a listen failure
func (s *Server) Run(_ context.Context) error {
	logger.Named("http").Info().Str("addr", s.srv.Addr).Msg("listening")
	if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains open requests until ctx ends
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
