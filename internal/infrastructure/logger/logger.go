// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures the logger from the environment.
// LOG_LEVEL selects the level (default "info"), LOG_FORMAT=json switches to
// the JSON formatter; anything else uses text.
func Init() {
	InitWith(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// InitWith configures the logger explicitly
func InitWith(levelName, format string, out io.Writer) {
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}

// Silence discards all log output. Used by tests and headless benchmarks.
func Silence() {
	Log.SetOutput(io.Discard)
}
