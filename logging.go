package sculptor

import (
	"os"

	"github.com/charmbracelet/log"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger wraps a charmbracelet logger writing to stderr.
type DefaultLogger struct {
	inner *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return &DefaultLogger{inner: l}
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.inner.GetLevel() <= log.DebugLevel
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	if enabled {
		l.inner.SetLevel(log.DebugLevel)
	} else {
		l.inner.SetLevel(log.InfoLevel)
	}
}

func (l *DefaultLogger) Debugf(format string, args ...any) { l.inner.Debugf(format, args...) }
func (l *DefaultLogger) Infof(format string, args ...any)  { l.inner.Infof(format, args...) }
func (l *DefaultLogger) Warnf(format string, args ...any)  { l.inner.Warnf(format, args...) }
func (l *DefaultLogger) Errorf(format string, args ...any) { l.inner.Errorf(format, args...) }

// LoggingModule installs a default logger as a resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App) {
	app.AddResources(NewDefaultLogger(m.Prefix, m.Debug))
}

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}
