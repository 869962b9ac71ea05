package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors give an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request id under "request_id". Empty ids give an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Lang records the request language under "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Handler names the HTTP handler that logged the record.
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
