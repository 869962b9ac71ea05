package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/passcheck/modules/passwordfield"
	"github.com/dmitrymomot/passcheck/pkg/clientip"
	"github.com/dmitrymomot/passcheck/pkg/config"
	"github.com/dmitrymomot/passcheck/pkg/cookie"
	"github.com/dmitrymomot/passcheck/pkg/httpserver"
	"github.com/dmitrymomot/passcheck/pkg/i18n"
	"github.com/dmitrymomot/passcheck/pkg/logger"
	"github.com/dmitrymomot/passcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/passcheck/pkg/requestid"
	"github.com/dmitrymomot/passcheck/translations"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`

	HTTP      httpserver.Config
	Password  passwordfield.Config
	RateLimit ratelimiter.Config
	Cookie    cookie.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "passcheck"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(translations.FS, "."),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return err
	}

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	svc := passwordfield.NewService(cfg.Password,
		passwordfield.WithTranslator(tr),
		passwordfield.WithLogger(log),
		passwordfield.WithFeedbackMiddleware(ratelimiter.Middleware(bucket, clientip.Key, log)),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(i18n.PersistQueryLang(tr, cookie.NewFromConfig(cfg.Cookie)))
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(tr)))

	r.Get("/health/live", httpserver.HealthHandler(log))
	r.Get("/health/ready", httpserver.HealthHandler(log, func(context.Context) error {
		if len(tr.SupportedLanguages()) == 0 {
			return errors.New("no translations loaded")
		}
		return nil
	}))
	r.Mount(cfg.Password.BasePath, svc.Handle())
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.Password.BasePath+"/demo", http.StatusFound)
	})

	srv := httpserver.New(append(cfg.HTTP.Options(), httpserver.WithLogger(log))...)
	return srv.Run(ctx, r)
}
