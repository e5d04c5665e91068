package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Init configures the package-level logrus logger.
// Logs go to stderr so command output on stdout stays clean.
// format "json" selects the JSON formatter, anything else the text formatter.
func Init(level, format string) {
	log.SetOutput(os.Stderr)
	log.SetLevel(ParseLevel(level))

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to a logrus level.
// Unknown strings default to InfoLevel.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
