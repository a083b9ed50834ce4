package forms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

var (
	errNoTranslations     = errors.New("no translations loaded")
	errTooManySubmissions = errors.New("too many form submissions")
)

// Router mounts the service endpoints:
//
//	POST /forms/company
//	POST /phone/format
//	POST /keys/filter
//	GET  /health/live
//	GET  /health/ready
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(s.translator.Matcher()), s.translator.DefaultLanguage()))

	r.With(s.throttle()...).Post("/forms/company", s.ValidateCompany)
	r.Post("/phone/format", s.FormatPhone)
	r.Post("/keys/filter", s.FilterKey)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.HealthCheckHandler(s.log))
		r.Get("/ready", httpserver.HealthCheckHandler(s.log, s.translationsLoaded))
	})

	return r
}

// throttle returns the per-IP submission limiter, if one is configured.
func (s *Service) throttle() []func(http.Handler) http.Handler {
	if s.limiter == nil {
		return nil
	}
	byIP := func(r *http.Request) string { return clientip.FromContext(r.Context()) }
	return []func(http.Handler) http.Handler{
		ratelimiter.Middleware(s.limiter, byIP,
			ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request) {
				s.fail(w, r, http.StatusTooManyRequests, "too_many_requests", errTooManySubmissions)
			}),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				s.fail(w, r, http.StatusInternalServerError, "internal_error", err)
			}),
		),
	}
}

func (s *Service) translationsLoaded(context.Context) error {
	if len(s.translator.SupportedLanguages()) == 0 {
		return errNoTranslations
	}
	return nil
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.DebugContext(r.Context(), "request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status_code", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
