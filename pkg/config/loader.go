package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type options struct {
	prefix      string
	envFiles    []string
	environment map[string]string
}

// Option customises a single Load call.
type Option func(*options)

// WithPrefix prepends prefix to every env tag, e.g. "FORMKIT_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the
// default .env, a missing explicit file is an error.
func WithEnvFiles(files ...string) Option {
	return func(o *options) { o.envFiles = append(o.envFiles, files...) }
}

// WithEnvironment parses from the given map instead of the process
// environment. Useful in tests.
func WithEnvironment(environment map[string]string) Option {
	return func(o *options) { o.environment = environment }
}

var defaultEnvLoaded sync.Once

// Load fills v from environment variables using `env` and `envDefault`
// struct tags. The first call loads ./.env if it exists; variables already
// set in the process environment take precedence over .env values.
//
//	type Config struct {
//		Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
//		Locale string `env:"DEFAULT_LOCALE" envDefault:"ru"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	defaultEnvLoaded.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
