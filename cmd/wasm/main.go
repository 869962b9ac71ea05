//go:build js && wasm

package main

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/dmitrymomot/passcheck/pkg/dom/jsdom"
	"github.com/dmitrymomot/passcheck/pkg/feedback"
	"github.com/dmitrymomot/passcheck/pkg/formbind"
	"github.com/dmitrymomot/passcheck/pkg/i18n"
	"github.com/dmitrymomot/passcheck/pkg/logger"
	"github.com/dmitrymomot/passcheck/pkg/password"
	"github.com/dmitrymomot/passcheck/translations"
)

func main() {
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(os.Stdout),
		logger.WithLevel(slog.LevelWarn),
		logger.WithAttr(logger.Component("passcheck-wasm")),
	)

	surface := jsdom.New()
	if _, err := feedback.EnsureStylesheet(surface); err != nil {
		log.Warn("stylesheet not injected", logger.Error(err))
	}

	engine := password.New(password.WithMessages(pageMessages(log)))

	setup := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 {
			return false
		}
		inputID := args[0].String()
		formID := ""
		if len(args) > 1 && args[1].Type() == js.TypeString {
			formID = args[1].String()
		}
		optional := len(args) > 2 && args[2].Truthy()
		return formbind.Setup(surface, inputID, formID, optional,
			formbind.WithEngine(engine),
			formbind.WithLogger(log),
		)
	})
	js.Global().Set("setupPasswordValidation", setup)

	select {}
}

// pageMessages picks the string table from the lang attribute of the page.
// Pages without a supported language get the Persian table.
func pageMessages(log *slog.Logger) password.Messages {
	tr, err := i18n.NewTranslator(context.Background(),
		i18n.NewFSAdapter(translations.FS, "."),
		i18n.WithDefaultLanguage("fa"),
		i18n.WithLogger(log),
	)
	if err != nil {
		log.Warn("translations not loaded", logger.Error(err))
		return password.DefaultMessages()
	}
	lang := js.Global().Get("document").Get("documentElement").Get("lang").String()
	return password.MessagesFromTranslator(tr, tr.Match(lang), password.DefaultMessages())
}
