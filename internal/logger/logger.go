package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the package-wide logger. Commands log through this rather than
// stdout so that plain-text command output stays machine-greppable.
var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(consoleWriter()).With().Timestamp().Logger()
}

// Configure sets the global level from the DEBUG environment variable and
// rebuilds the console writer.
func Configure() {
	level := zerolog.WarnLevel
	if v := strings.ToLower(os.Getenv("DEBUG")); v == "1" || v == "true" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	Logger = zerolog.New(consoleWriter()).With().Timestamp().Logger()
	log.Logger = Logger
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...any) {
	Logger.Debug().Msgf(format, args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...any) {
	Logger.Warn().Msgf(format, args...)
}
