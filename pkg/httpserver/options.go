package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server. Invalid values panic at construction.
type Option func(*options)

type options struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
	startHooks      []func()
	stopHooks       []func()
}

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty addr")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(o *options) { o.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(o *options) { o.writeTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustPositive("idle timeout", d)
	return func(o *options) { o.idleTimeout = d }
}

// WithShutdownTimeout bounds how long in-flight requests may take to finish.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger sets the logger for lifecycle events. Nil keeps logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStartHook registers h to run right before the listener starts.
func WithStartHook(h func()) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(o *options) { o.startHooks = append(o.startHooks, h) }
}

// WithStopHook registers h to run after graceful shutdown completes.
func WithStopHook(h func()) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(o *options) { o.stopHooks = append(o.stopHooks, h) }
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + name + " must be > 0")
	}
}
