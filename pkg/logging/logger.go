// Package logging builds the tool's loggers. Diagnostics go to stderr
// through logrus so command results on stdout stay clean for piping.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out at the given level. Format is
// "text" or "json"; text honors noColor.
func New(out io.Writer, level, format string, noColor bool) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("logging: parse level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parsed)

	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: noColor,
			FullTimestamp: true,
		})
	default:
		return nil, fmt.Errorf("logging: format %q not recognized (want text or json)", format)
	}
	return logger, nil
}

// Component scopes a logger with a component field so messages from
// different subsystems can be told apart.
func Component(logger logrus.FieldLogger, name string) logrus.FieldLogger {
	return logger.WithField("component", name)
}

// Discard returns a logger that drops everything. It stands in wherever
// a logger is required but nothing should be printed.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
