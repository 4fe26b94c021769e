package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level mirrors the logrus levels the driver actually uses.
type Level = logrus.Level

// Levels the driver logs at. Anything below the configured level is
// suppressed; the default is to log nothing.
const (
	ErrorLevel = logrus.ErrorLevel
	InfoLevel  = logrus.InfoLevel
	TraceLevel = logrus.TraceLevel
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false})
	return l
}

// SetLevel sets the logging level by name: "trace", "info", "error" or
// anything else to disable logging.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		logger.SetLevel(TraceLevel)
	case "info":
		logger.SetLevel(InfoLevel)
	case "error":
		logger.SetLevel(ErrorLevel)
	default:
		logger.SetLevel(logrus.PanicLevel)
	}
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	return logger.GetLevel()
}

// SetOutput redirects the driver's log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Trace logs at trace level
func Trace(args ...interface{}) {
	logger.Trace(args...)
}

// Tracef logs a formatted message at trace level
func Tracef(msg string, args ...interface{}) {
	logger.Tracef(msg, args...)
}

// Info logs at info level
func Info(args ...interface{}) {
	logger.Info(args...)
}

// Infof logs a formatted message at info level
func Infof(msg string, args ...interface{}) {
	logger.Infof(msg, args...)
}

// Error logs at error level
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Errorf logs a formatted message at error level
func Errorf(msg string, args ...interface{}) {
	logger.Errorf(msg, args...)
}
