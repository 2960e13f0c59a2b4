package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
)

const readHeaderTimeout = 5 * time.Second

// Server is the gateway's HTTP listener. Run serves until its context ends
// and then drains in-flight requests.
type Server struct {
	srv    *http.Server
	drain  time.Duration
	logger *slog.Logger
}

// NewServer creates a server for handler. net/http's own error log is routed
// through logger at WARN.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		drain:  cfg.ShutdownTimeout,
		logger: logger,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then stops
// accepting and waits up to the drain timeout for in-flight requests. If the
// drain runs out, remaining connections are closed and the deadline error is
// returned. Request contexts are not derived from ctx, so a shutdown signal
// does not cancel requests that are already being served.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.InfoContext(ctx, "gateway listening", slog.String("addr", ln.Addr().String()))

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.logger.InfoContext(ctx, "draining http server", slog.Duration("timeout", s.drain))

	drainCtx := context.WithoutCancel(ctx)
	if s.drain > 0 {
		var cancel context.CancelFunc
		drainCtx, cancel = context.WithTimeout(drainCtx, s.drain)
		defer cancel()
	}

	err := s.srv.Shutdown(drainCtx)
	if err != nil {
		_ = s.srv.Close()
		err = fmt.Errorf("draining http server: %w", err)
	}
	if serveErr := <-served; !errors.Is(serveErr, http.ErrServerClosed) {
		err = errors.Join(err, serveErr)
	}
	return err
}
