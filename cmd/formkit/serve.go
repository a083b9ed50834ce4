package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/internal/forms"
	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg Config
			if err := config.Load(&cfg); err != nil {
				return err
			}

			log := logger.New(
				logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
				logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
			)
			logger.SetAsDefault(log)

			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg Config, log *slog.Logger) error {
	translator, err := forms.NewTranslator(ctx, log.With(logger.Component("i18n")), cfg.DefaultLocale)
	if err != nil {
		return err
	}

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	svc := forms.NewService(translator,
		forms.WithLogger(log),
		forms.WithKeyMaxLength(cfg.PhoneMaxLength),
		forms.WithRateLimiter(limiter),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log.With(logger.Component("http"))),
	)
	return srv.Run(ctx, svc.Router())
}
