package logger

import (
	"os"
	"strings"

	logging "github.com/op/go-logging"
)

type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

const formatSpec = "%{time:2006-01-02 15:04:05} %{level:.4s} %{module:-10s} | %{message}"

var leveled logging.LeveledBackend

// Setup installs the stderr backend. level is one of debug, info, warning,
// error; anything else falls back to info.
func Setup(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(formatSpec))
	leveled = logging.AddModuleLevel(formatted)
	SetLevel(level)
	logging.SetBackend(leveled)
}

func SetLevel(level string) {
	if leveled == nil {
		return
	}
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, "")
}

type goLogger struct {
	l *logging.Logger
}

// New returns a Logger tagged with module.
func New(module string) Logger { return &goLogger{l: logging.MustGetLogger(module)} }

func (g *goLogger) Debugf(format string, v ...any) { g.l.Debugf(format, v...) }
func (g *goLogger) Infof(format string, v ...any)  { g.l.Infof(format, v...) }
func (g *goLogger) Warnf(format string, v ...any)  { g.l.Warningf(format, v...) }
func (g *goLogger) Errorf(format string, v ...any) { g.l.Errorf(format, v...) }

// Nop discards everything. 테스트용
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
