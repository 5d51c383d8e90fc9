package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Server wraps http.Server with graceful shutdown capabilities.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func(context.Context) error
}

// NewServer creates a new Server instance with optimized settings.
// requestTimeout is the per-request deadline; the write timeout leaves room for
// the 504 written when it expires.
func NewServer(handler http.Handler, port string, requestTimeout time.Duration) *Server {
	writeTimeout := 15 * time.Second
	if requestTimeout+5*time.Second > writeTimeout {
		writeTimeout = requestTimeout + 5*time.Second
	}
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20, // 1MB
		},
		shutdownTimeout: 10 * time.Second,
	}
}

// OnShutdown registers fn to run after the HTTP server has drained, in registration order.
func (s *Server) OnShutdown(fn func(context.Context) error) {
	s.onShutdown = append(s.onShutdown, fn)
}

// Run starts the server and blocks until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return errors.Join(err, s.runShutdownHooks())
	case <-ctx.Done():
		log.Info().Msg("Shutdown requested, draining connections")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and then runs the shutdown hooks.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return errors.Join(err, s.runShutdownHooks())
	}

	if err := s.runShutdownHooks(); err != nil {
		return err
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}

func (s *Server) runShutdownHooks() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	for _, fn := range s.onShutdown {
		if err := fn(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown hook failed")
			errs = append(errs, err)
		}
	}
	s.onShutdown = nil
	return errors.Join(errs...)
}
