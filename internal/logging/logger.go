package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/lmittmann/tint"
)

// Setup installs the console handler as the global logger and returns it so
// callers can fan it out with other handlers later.
func Setup(cfg *config.Config) slog.Handler {
	handler := ConsoleHandler(cfg)
	slog.SetDefault(slog.New(handler))
	return handler
}

// ConsoleHandler writes colored text in dev and JSON everywhere else.
func ConsoleHandler(cfg *config.Config) slog.Handler {
	level := ParseLevel(cfg.LogLevel)
	if cfg.IsDev() {
		return tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
