package main

import (
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

type Config struct {
	AppName        string `env:"APP_NAME" envDefault:"formkit"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	DefaultLocale  string `env:"DEFAULT_LOCALE" envDefault:"ru"`
	PhoneMaxLength int    `env:"PHONE_MAX_LENGTH" envDefault:"11"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}
