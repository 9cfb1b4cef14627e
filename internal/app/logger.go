package app

import (
	"io"
	"log/slog"
	"os"

	"vendora-dispatch/internal/config"
	"vendora-dispatch/internal/logx"
)

// NewLogger builds the JSON process logger at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return newLogger(os.Stdout, cfg.LogLevel)
}

func newLogger(w io.Writer, level string) logx.Logger {
	lvl, err := logx.ParseLevel(level)
	base := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	}))
	logger := logx.NewSlogAdapter(base)
	if err != nil {
		logger.Warn("unknown log level, falling back to info", logx.String("level", level))
	}
	return logger
}
