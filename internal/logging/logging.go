package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
	}

	return &logger
}

// SetupLoggingWithLevel is SetupLogging with the level parsed from LOG_LEVEL.
// Unknown levels fall back to info.
func SetupLoggingWithLevel(level string) *logrus.Logger {
	logger := SetupLogging()
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	} else {
		logger.WithField("level", level).Warn("logging.SetupLoggingWithLevel.unknown level")
	}
	return logger
}
