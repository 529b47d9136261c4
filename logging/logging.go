package logging

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLevel translates a string representation of a log level into a log level enum
func ParseLevel(s string) (int, error) {
	for level := TraceLevel; level <= FatalLevel; level++ {
		if strings.EqualFold(s, LogLevelToString(level)) {
			return level, nil
		}
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// ToLogrusLevel translates a log level enum to the equivalent logrus level
func ToLogrusLevel(level int) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.TraceLevel
	}
}

// New produces a logger writing to stderr at the given level
func New(level int) *logrus.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter produces a logger writing to w at the given level
func NewWithWriter(w io.Writer, level int) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(ToLogrusLevel(level))
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}

// Discard produces a logger which drops everything, for tests and embedders which
// do their own reporting
func Discard() *logrus.Logger {
	return NewWithWriter(ioutil.Discard, FatalLevel)
}
