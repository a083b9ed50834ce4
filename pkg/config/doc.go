// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps github.com/joho/godotenv, which reads an optional .env file
// into the process environment, and github.com/caarlos0/env/v11, which
// parses the environment into a struct using `env` and `envDefault` tags:
//
//	type Config struct {
//		AppEnv string             `env:"APP_ENV" envDefault:"development"`
//		HTTP   httpserver.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile and can be checked with
// errors.Is.
package config
