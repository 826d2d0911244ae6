package testutil

import (
	"io"
	"log/slog"

	"github.com/mkravets/bookmarks-api/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything, for tests.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
