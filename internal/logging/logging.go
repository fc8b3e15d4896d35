// Package logging builds the application logger on logrus and adapts it to
// the small Logger interface used by the conversion packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options configures the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // empty logs to Output
	Output io.Writer
}

// New creates a logger. The returned close function releases the log file
// and is never nil.
func New(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	closeFn := func() error { return nil }

	level := opts.Level
	if level == "" {
		level = "info"
	}
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, closeFn, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(logLevel)

	switch opts.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		return nil, closeFn, fmt.Errorf("unknown log format %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, closeFn, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}
	logger.SetOutput(out)

	return logger, closeFn, nil
}

// Adapter exposes a logrus entry through Debug/Info/Warn/Error with
// printf-style arguments.
type Adapter struct {
	entry *logrus.Entry
}

// NewAdapter wraps a logger, tagging every line with the component name.
func NewAdapter(logger *logrus.Logger, component string) *Adapter {
	return &Adapter{entry: logger.WithField("component", component)}
}

func (a *Adapter) Debug(msg string, args ...interface{}) { a.entry.Debugf(msg, args...) }
func (a *Adapter) Info(msg string, args ...interface{})  { a.entry.Infof(msg, args...) }
func (a *Adapter) Warn(msg string, args ...interface{})  { a.entry.Warnf(msg, args...) }
func (a *Adapter) Error(msg string, args ...interface{}) { a.entry.Errorf(msg, args...) }
