// Package logging provides structured logging for the redirector core.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus entry with the prefixed, leveled call shape the
// rest of the package expects (Trace/Debug/Info/Warn/Error + WithPrefix).
type Logger struct {
	entry *logrus.Entry
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the process-wide default logger, configured from the
// REDIRFS_LOG_LEVEL environment variable (ERROR, WARN, INFO, DEBUG, TRACE).
func GetLogger() *Logger {
	once.Do(func() {
		base := logrus.New()
		base.SetOutput(os.Stdout)
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		base.SetLevel(logrus.InfoLevel)

		if lvl := os.Getenv("REDIRFS_LOG_LEVEL"); lvl != "" {
			if parsed, err := logrus.ParseLevel(lvl); err == nil {
				base.SetLevel(parsed)
			}
		}

		defaultLogger = &Logger{entry: base.WithField("component", "redirfs")}
	})
	return defaultLogger
}

// WithPrefix returns a child logger tagged with the given component prefix,
// mirroring how the teacher project scopes a logger per source file.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{entry: l.entry.WithField("scope", prefix)}
}

// WithField attaches a single structured field for the next log call.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Trace(format string, args ...interface{}) { l.entry.Tracef(format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
