// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps the charmbracelet logger used across kvedit. The
// terminal belongs to the TUI while it runs, so output goes to a log file
// or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It discards everything until Setup
// points it somewhere.
var L = clog.New(io.Discard)

// Setup routes log output to the file at path, appending. An empty path
// discards output. The returned function closes the file.
func Setup(path string, debug bool) (func() error, error) {
	if path == "" {
		L = clog.New(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}

	L = clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Prefix:          "kvedit",
	})
	SetDebug(debug)
	return f.Close, nil
}

// SetDebug controls whether calls to Debugf emit output.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
