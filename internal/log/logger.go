// Package log wraps logrus behind the small surface the rest of the
// application uses: leveled logging, structured fields, and optional
// file output. The picker owns stderr while it runs, so interactive
// sessions log to a file (or nowhere) rather than the terminal.
package log

import (
	"io"
	"os"

	apperrors "trygo/internal/errors"

	"github.com/sirupsen/logrus"
)

var logger = NewLogger()

// Field is one structured logging key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger plus the file it may own.
type Logger struct {
	l    *logrus.Logger
	file *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput directs log output to w.
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// WithFile appends log output to the named file, creating it if needed.
// On open failure the logger keeps its current output.
func WithFile(path string) Option {
	return func(lg *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			lg.l.WithField("path", path).Warn("could not open log file")
			return
		}
		lg.file = f
		lg.l.SetOutput(f)
	}
}

// WithJSON switches the logger to logrus' JSON formatter.
func WithJSON() Option {
	return func(lg *Logger) {
		lg.l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithDiscard silences the logger entirely.
func WithDiscard() Option {
	return func(lg *Logger) {
		lg.l.SetOutput(io.Discard)
	}
}

// NewLogger creates a logger writing text to stderr at info level.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

// Configure replaces the global logger's settings.
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

// SetDebug toggles debug-level logging on the global logger.
func SetDebug(debug bool) {
	if debug {
		logger.l.SetLevel(logrus.DebugLevel)
	} else {
		logger.l.SetLevel(logrus.InfoLevel)
	}
}

// Close releases the log file if one was opened.
func Close() {
	if logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
}

// With attaches structured fields to a log entry.
func (lg *Logger) With(fields ...Field) *logrus.Entry {
	lf := logrus.Fields{}
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lg.l.WithFields(lf)
}

func (lg *Logger) Info(args ...interface{})                  { lg.l.Info(args...) }
func (lg *Logger) Infof(format string, args ...interface{})  { lg.l.Infof(format, args...) }
func (lg *Logger) Debug(args ...interface{})                 { lg.l.Debug(args...) }
func (lg *Logger) Debugf(format string, args ...interface{}) { lg.l.Debugf(format, args...) }
func (lg *Logger) Warn(args ...interface{})                  { lg.l.Warn(args...) }
func (lg *Logger) Warnf(format string, args ...interface{})  { lg.l.Warnf(format, args...) }
func (lg *Logger) Error(args ...interface{})                 { lg.l.Error(args...) }
func (lg *Logger) Errorf(format string, args ...interface{}) { lg.l.Errorf(format, args...) }

// Package-level helpers on the global logger

func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Warn(args ...interface{})                  { logger.Warn(args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// LogWithFields attaches structured fields to an entry on the global logger.
func LogWithFields(fields ...Field) *logrus.Entry {
	return logger.With(fields...)
}

// LogWithError builds an entry carrying the error plus whatever typed
// context (kind, path, param, stage) the error chain provides.
func LogWithError(err error) *logrus.Entry {
	fields := []Field{F("error", err)}

	var pathErr *apperrors.PathError
	var configErr *apperrors.ConfigError
	var setupErr *apperrors.SetupError
	var appErr *apperrors.ApplicationError

	switch {
	case apperrors.As(err, &pathErr):
		fields = append(fields, F("error_kind", int(pathErr.Kind())), F("path", pathErr.Path()))
	case apperrors.As(err, &configErr):
		fields = append(fields, F("error_kind", int(configErr.Kind())), F("param", configErr.Param()))
	case apperrors.As(err, &setupErr):
		fields = append(fields, F("error_kind", int(setupErr.Kind())), F("stage", setupErr.Stage()))
	case apperrors.As(err, &appErr):
		fields = append(fields, F("error_kind", int(appErr.Kind())))
	}

	return logger.With(fields...)
}

// LogError logs an error with a message in one call.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}
