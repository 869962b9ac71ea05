package formbind

import (
	"log/slog"

	"github.com/dmitrymomot/passcheck/pkg/password"
)

// Option configures a Binding.
type Option func(*Binding)

// WithOptional lets the field stay empty.
func WithOptional(optional bool) Option {
	return func(b *Binding) {
		b.optional = optional
	}
}

// WithEngine sets the rule engine and, through it, the string table.
func WithEngine(e *password.Engine) Option {
	return func(b *Binding) {
		if e != nil {
			b.engine = e
		}
	}
}

// WithNotifier replaces the inline error region.
func WithNotifier(n Notifier) Option {
	return func(b *Binding) {
		if n != nil {
			b.notifier = n
		}
	}
}

// WithLogger sets the logger. Logs are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binding) {
		if l != nil {
			b.logger = l
		}
	}
}
