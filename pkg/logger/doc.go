// Package logger builds log/slog loggers with environment presets and
// context-aware attributes.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated", logger.Form("company"), logger.Locale("ru"))
//
// Context extractors run on every record, so request-scoped values such as
// the request ID are attached without threading a logger through calls.
package logger
