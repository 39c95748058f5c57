// Package log provides the logging backend, built on go-logging.
//
// Each package asks the Backend for a module logger; the module name shows up
// in every line. Diagnostics go to stderr by default so command output on
// stdout stays clean.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/op/go-logging.v1"
)

// Backend is a log backend.
type Backend struct {
	w       io.Writer
	backend logging.LeveledBackend
}

// GetLogger returns a per-module logger that writes to the backend.
func (b *Backend) GetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	l.SetBackend(b.backend)
	return l
}

// Writer returns the destination of the backend.
func (b *Backend) Writer() io.Writer { return b.w }

// Close closes the log file, if one was opened.
func (b *Backend) Close() error {
	if c, ok := b.w.(io.Closer); ok && b.w != os.Stderr && b.w != os.Stdout {
		return c.Close()
	}
	return nil
}

// New initializes a logging backend. An empty f logs to stderr.
func New(f string, level string, disable bool) (*Backend, error) {
	lvl, err := LevelFromString(level)
	if err != nil {
		return nil, err
	}

	var w io.Writer
	switch {
	case disable:
		w = io.Discard
	case f == "":
		w = os.Stderr
	default:
		const fileMode = 0o600

		flags := os.O_CREATE | os.O_APPEND | os.O_WRONLY
		w, err = os.OpenFile(f, flags, fileMode)
		if err != nil {
			return nil, fmt.Errorf("log: failed to create log file: %v", err)
		}
	}

	return NewWithWriter(w, lvl), nil
}

// NewWithWriter builds a backend on an arbitrary writer.
func NewWithWriter(w io.Writer, lvl logging.Level) *Backend {
	logFmt := logging.MustStringFormatter("%{time:15:04:05.000} %{level:.4s} %{module}: %{message}")
	base := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(base, logFmt)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	return &Backend{w: w, backend: leveled}
}

// Discard returns a backend that drops everything, for tests.
func Discard() *Backend {
	return NewWithWriter(io.Discard, logging.CRITICAL)
}

// LevelFromString maps ERROR, WARNING, NOTICE, INFO and DEBUG (any case).
func LevelFromString(l string) (logging.Level, error) {
	switch strings.ToUpper(l) {
	case "ERROR":
		return logging.ERROR, nil
	case "WARNING":
		return logging.WARNING, nil
	case "NOTICE":
		return logging.NOTICE, nil
	case "INFO":
		return logging.INFO, nil
	case "DEBUG":
		return logging.DEBUG, nil
	default:
		return logging.CRITICAL, fmt.Errorf("log: invalid level: '%v'", l)
	}
}
