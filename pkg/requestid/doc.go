// Package requestid tags every HTTP request with an identifier that is
// echoed in the X-Request-ID response header and attached to log records.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Incoming IDs are kept only when they are at most 128 characters of
// letters, digits, '-' and '_'. Anything else is replaced by a fresh UUID.
package requestid
