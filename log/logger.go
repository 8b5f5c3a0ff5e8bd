// Package log gives every annotate package a named logger writing to one
// shared, leveled go-logging backend.  Library packages stay quiet below
// Notice unless the command line raises the verbosity.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects which messages reach the sink, from Debug (everything) to
// Error (failures only)
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// backendLevels maps each Level onto go-logging
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// lineFormat prints time, module and level ahead of each message
var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:-7s} [%{module}]%{color:reset} %{message}`,
)

// shared is the backend every named logger writes through
var shared logging.LeveledBackend

// Logger is the subset of *logging.Logger the annotate packages log with
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a package, its name shows in every line
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink sends all log lines to w, keeping the current level
func SetSink(w io.Writer) {
	level := logging.NOTICE

	if shared != nil {
		level = shared.GetLevel("")
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)

	shared = logging.AddModuleLevel(formatted)
	shared.SetLevel(level, "")
	logging.SetBackend(shared)
}

// SetLevel changes the verbosity of every module.  Unknown levels fall back
// to Notice.
func SetLevel(level Level) {
	lvl, ok := backendLevels[level]

	if !ok {
		lvl = logging.NOTICE
	}

	shared.SetLevel(lvl, "")
}

// ParseLevel converts a level name such as "debug" or "WARNING" to a Level.
// Unknown names map to Notice and critical maps to Error.
func ParseLevel(name string) Level {
	lvl, err := logging.LogLevel(name)

	if err != nil {
		return Notice
	}

	if lvl == logging.CRITICAL {
		return Error
	}

	for level, backend := range backendLevels {
		if backend == lvl {
			return level
		}
	}

	return Notice
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
