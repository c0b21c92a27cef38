// Package logger configures the process-wide zerolog instance. CLI entry
// points call Init once; everything else logs through zerolog's global
// log.Logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls log verbosity and output format.
type Config struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Init installs the global logger. Level falls back to info when the
// configured value does not parse; format "pretty" writes a colorized
// console stream to stderr, anything else writes JSON lines.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stderr
	if cfg.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}
