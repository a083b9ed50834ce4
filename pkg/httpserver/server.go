package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Server runs an http.Server until its context is cancelled or the process
// receives SIGINT/SIGTERM, then shuts it down gracefully.
type Server struct {
	opts *options

	mu   sync.Mutex
	srv  *http.Server
	once sync.Once
}

func New(opts ...Option) *Server {
	o := &options{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Server{opts: o}
}

// Run serves handler and blocks until shutdown. Listen failures are wrapped
// with ErrStart. A nil handler responds 404 to everything.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:         s.opts.addr,
		Handler:      handler,
		ReadTimeout:  s.opts.readTimeout,
		WriteTimeout: s.opts.writeTimeout,
		IdleTimeout:  s.opts.idleTimeout,
		ErrorLog:     slog.NewLogLogger(s.opts.logger.Handler(), slog.LevelError),
	}
	s.srv = srv
	s.mu.Unlock()

	for _, h := range s.opts.startHooks {
		h()
	}
	s.opts.logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	select {
	case <-sigCtx.Done():
		if shutdownErr := s.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			s.opts.logger.ErrorContext(ctx, "http server shutdown", logger.Error(shutdownErr))
		}
		err = <-errCh
	case err = <-errCh:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown stops a running server. Calls after the first are no-ops, as is
// calling it before Run.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		for _, h := range s.opts.stopHooks {
			h()
		}
		s.opts.logger.InfoContext(ctx, "http server stopped")
	})

	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
