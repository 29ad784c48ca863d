package bookslentbyuser_test

import (
	"log/slog"
)

func slogLogger(handler slog.Handler) *slog.Logger {
	return slog.New(handler)
}
