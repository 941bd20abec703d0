package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Endpoint records the handling endpoint name under the key "endpoint".
func Endpoint(name string) slog.Attr {
	return slog.String("endpoint", name)
}

// MissingFields records the field names that failed required validation.
func MissingFields(fields []string) slog.Attr {
	return slog.Any("missing_fields", fields)
}
