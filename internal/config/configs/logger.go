package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the structured logger. Level is the minimum severity
// emitted ("debug", "info", "warn", "error"); Format selects the handler
// encoding ("text" or "json"). Both are matched case-insensitively and
// fall back to their defaults on unrecognised input, so a typo in the
// environment degrades logging rather than aborting startup.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level onto a slog.Level, defaulting to
// info.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat returns the normalised handler encoding, "text" unless JSON
// was requested explicitly.
func (c Logger) SlogFormat() string {
	if strings.EqualFold(c.Format, "json") {
		return "json"
	}
	return "text"
}
