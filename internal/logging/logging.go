package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ecolearn/internal/config"
)

// New builds the process logger from config. Levels follow zerolog's names
// ("trace" | "debug" | "info" | "warn" | "error"); format is "json" or
// "console".
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var base zerolog.Logger
	if strings.ToLower(cfg.LogFormat) == "console" {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		base = zerolog.New(out).With().Timestamp().Logger()
	} else {
		base = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return &base
}
