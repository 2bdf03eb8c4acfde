package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors by position. It returns an empty attribute
// when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error returns an empty attribute for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Number is the value being converted.
func Number(n float64) slog.Attr {
	return slog.Float64("number", n)
}

// Style is the grouping style of a conversion, indian or international.
func Style(style string) slog.Attr {
	return slog.String("style", style)
}

// Mode is the rendering mode of a conversion: integer, decimal or currency.
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Language returns the word pack tag as "language".
func Language(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("language", lang)
}

// RequestID returns the request id as "request_id".
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration returns d as "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component names the package or subsystem that logs.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Route is the matched route pattern of an HTTP request.
func Route(pattern string) slog.Attr {
	return slog.String("route", pattern)
}

// Status returns an HTTP status code as "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
