// Package logging configures the process-wide logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns a JSON logger writing to stderr at Info level.
func Setup() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stderr,
		Level: logrus.InfoLevel,
	}

	return &logger
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that have no use for diagnostics.
func Discard() *logrus.Logger {
	logger := Setup()
	logger.Out = io.Discard
	return logger
}
