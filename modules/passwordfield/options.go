package passwordfield

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/passcheck/handler"
	"github.com/dmitrymomot/passcheck/pkg/password"
)

type Option func(*Service)

// WithTranslator sets the string table source. i18n.Translator satisfies it.
func WithTranslator(t password.Translator) Option {
	return func(s *Service) {
		s.translator = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithViews overrides the default components. Nil fields keep the defaults.
func WithViews(v Views) Option {
	return func(s *Service) {
		if v.Panel != nil {
			s.views.Panel = v.Panel
		}
		if v.DemoPage != nil {
			s.views.DemoPage = v.DemoPage
		}
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithFeedbackMiddleware wraps the /feedback route, e.g. with a rate limiter.
func WithFeedbackMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Service) {
		s.feedbackMW = append(s.feedbackMW, mw...)
	}
}
