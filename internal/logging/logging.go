// Package logging configures the logrus logger shared by the command-line
// tools and hands library packages a silent default.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	discard     *logrus.Logger
	discardOnce sync.Once
)

// Options selects level, format and destinations.
type Options struct {
	Level   string // logrus level name; invalid values fall back to info
	Format  string // "text" or "json"
	File    string // optional log file, appended to
	Console bool   // write to stderr
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init builds a logger from opts. The returned closer releases the log file,
// if any, and must be closed once the logger is no longer used.
func Init(opts Options) (*logrus.Logger, io.Closer, error) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)
	if opts.Console {
		writers = append(writers, os.Stderr)
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, f)
		closer = f
	}

	switch len(writers) {
	case 0:
		l.SetOutput(io.Discard)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	return l, closer, nil
}

// Discard returns a logger that drops every entry. Library packages use it
// when the caller supplies no logger.
func Discard() *logrus.Logger {
	discardOnce.Do(func() {
		discard = logrus.New()
		discard.SetOutput(io.Discard)
		discard.SetLevel(logrus.PanicLevel)
	})
	return discard
}
