// Package logger builds the logrus logger shared by the API server and tools.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr at the given level. Unknown levels
// fall back to info. JSON output is used when json is true.
func New(level string, json bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}
