package passwordfield

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/passcheck/handler"
	"github.com/dmitrymomot/passcheck/pkg/binder"
	"github.com/dmitrymomot/passcheck/pkg/feedback"
	"github.com/dmitrymomot/passcheck/pkg/formbind"
	"github.com/dmitrymomot/passcheck/pkg/i18n"
	"github.com/dmitrymomot/passcheck/pkg/logger"
	"github.com/dmitrymomot/passcheck/pkg/password"
)

// Events sent by the demo page in the "event" parameter.
const (
	EventFocus  = "focus"
	EventInput  = "input"
	EventSubmit = "submit"
)

// Signal names patched by /feedback.
const (
	SignalValidity = "passwordValidity"
	SignalError    = "passwordError"
	SignalAccepted = "passwordAccepted"
)

type Service struct {
	cfg          Config
	translator   password.Translator
	log          *slog.Logger
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	feedbackMW   []func(http.Handler) http.Handler
}

func NewService(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:   cfg.withDefaults(),
		log:   slog.New(slog.DiscardHandler),
		views: DefaultViews(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}
	s.log = s.log.With(logger.Component("passwordfield"))
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/rules", handler.Wrap(s.rules,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	feedbackHandler := handler.Wrap(s.feedback,
		handler.WithBinders[handler.Context, FeedbackRequest](
			binder.Signals(),
			binder.JSON(),
			binder.Form(),
			binder.Query(),
		),
		handler.WithErrorHandler[handler.Context, FeedbackRequest](s.errorHandler),
	)
	r.With(s.feedbackMW...).Get("/feedback", feedbackHandler)
	r.With(s.feedbackMW...).Post("/feedback", feedbackHandler)

	r.Get("/style.css", s.stylesheet)

	r.Get("/demo", handler.Wrap(s.demo,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/demo", handler.Wrap(s.submitDemo,
		handler.WithBinders[handler.Context, DemoSubmit](binder.Form()),
		handler.WithErrorHandler[handler.Context, DemoSubmit](s.errorHandler),
	))

	return r
}

// messages resolves the string table for lang.
func (s *Service) messages(lang string) password.Messages {
	fallback := password.EnglishMessages()
	if baseLanguage(lang) == "fa" {
		fallback = password.DefaultMessages()
	}
	return password.MessagesFromTranslator(s.translator, lang, fallback)
}

func (s *Service) text(lang, key, def string) string {
	if s.translator == nil {
		return def
	}
	return s.translator.Td(lang, key, def)
}

// RuleInfo describes one rule of the checklist.
type RuleInfo struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (s *Service) rules(ctx handler.Context, _ struct{}) handler.Response {
	msgs := s.messages(i18n.GetLocale(ctx))
	names := password.RuleNames()
	out := make([]RuleInfo, 0, len(names))
	for _, name := range names {
		out = append(out, RuleInfo{Name: name, Message: msgs.For(name)})
	}
	return handler.JSON(out)
}

// FeedbackRequest is bound from datastar signals, a JSON body, a form or
// the query string, in that order.
type FeedbackRequest struct {
	Password string `json:"password" form:"password" query:"password"`
	Optional bool   `json:"optional" form:"optional" query:"optional"`
	Event    string `json:"event" form:"event" query:"event"`
}

func (s *Service) feedback(ctx handler.Context, req FeedbackRequest) handler.Response {
	lang := i18n.GetLocale(ctx)
	msgs := s.messages(lang)
	engine := password.New(password.WithMessages(msgs))
	optional := req.Optional || s.cfg.Optional
	empty := req.Password == ""

	params := feedback.PanelParams{
		ID:       feedback.PanelID(s.cfg.InputID),
		Messages: msgs,
	}
	signals := map[string]any{}

	switch req.Event {
	case EventFocus:
		params.Visible = !(optional && empty)
		if !empty {
			res := engine.Validate(req.Password)
			params.Result = &res
		}

	case EventSubmit:
		if optional && empty {
			signals[SignalAccepted] = true
			signals[SignalError] = ""
			break
		}
		res := engine.Validate(req.Password)
		params.Result = &res
		if res.Valid {
			signals[SignalValidity] = formbind.Valid.String()
			signals[SignalAccepted] = true
			signals[SignalError] = ""
			params.Visible = true
			break
		}
		params.Visible = true
		signals[SignalValidity] = formbind.Invalid.String()
		signals[SignalAccepted] = false
		signals[SignalError] = msgs.SubmitBlocked
		s.log.DebugContext(ctx, "password submit blocked",
			logger.Handler("feedback"),
			logger.Lang(lang),
			slog.Int("failed_rules", len(res.Failed())),
		)

	default:
		// Any edit withdraws an earlier acceptance.
		signals[SignalAccepted] = false
		if optional && empty {
			signals[SignalValidity] = formbind.Neutral.String()
			signals[SignalError] = ""
			break
		}
		res := engine.Validate(req.Password)
		params.Result = &res
		params.Visible = true
		if res.Valid {
			signals[SignalValidity] = formbind.Valid.String()
			signals[SignalError] = ""
		} else {
			signals[SignalValidity] = formbind.Invalid.String()
		}
	}

	var patch any
	if len(signals) > 0 {
		patch = signals
	}
	return handler.TemplWithSignals(
		s.views.Panel(params),
		patch,
		handler.WithTarget("#"+params.ID),
		handler.WithPatchMode(handler.PatchOuter),
	)
}

func (s *Service) stylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(feedback.CSS))
}

func (s *Service) demoParams(lang string) DemoPageParams {
	labelKey, labelDef := "password.label", "Password"
	if s.cfg.Optional {
		labelKey, labelDef = "password.optional_label", "New password (optional)"
	}
	return DemoPageParams{
		Lang:        lang,
		Dir:         direction(lang),
		BasePath:    s.cfg.BasePath,
		InputID:     s.cfg.InputID,
		FormID:      s.cfg.FormID,
		Optional:    s.cfg.Optional,
		Label:       s.text(lang, labelKey, labelDef),
		Submit:      s.text(lang, "password.submit", "Save"),
		Messages:    s.messages(lang),
		DatastarURL: s.cfg.DatastarScriptURL,
	}
}

func (s *Service) demo(ctx handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.DemoPage(s.demoParams(i18n.GetLocale(ctx))))
}

// DemoSubmit is the native form submission of the demo page.
type DemoSubmit struct {
	Password string `form:"password"`
}

// submitDemo checks the password again on the server, so the form holds
// without scripts too.
func (s *Service) submitDemo(ctx handler.Context, req DemoSubmit) handler.Response {
	lang := i18n.GetLocale(ctx)
	params := s.demoParams(lang)
	engine := password.New(password.WithMessages(params.Messages))

	check := engine.Check
	if s.cfg.Optional {
		check = engine.CheckOptional
	}
	if err := check("password", req.Password); err != nil {
		params.Notice = params.Messages.SubmitBlocked
		params.NoticeIsError = true
		s.log.DebugContext(ctx, "demo submit rejected",
			logger.Handler("demo"),
			logger.Lang(lang),
			logger.Error(err),
		)
		return handler.Templ(s.views.DemoPage(params))
	}

	params.Notice = s.text(lang, "password.saved", "Password saved")
	return handler.Templ(s.views.DemoPage(params))
}
