// SPDX-License-Identifier: MPL-2.0

// Package logging wires the launcher's structured logging: a charmbracelet/log
// logger on stderr installed as the log/slog default handler, so every package
// logs through slog while output keeps the charm look.
//
// Standard output is never written: it belongs to the delegate.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is the logger prefix shown before every launcher log line.
const Prefix = "research"

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel converts a config level name (debug, info, warn, error) to a log.Level.
// The empty string maps to warn.
func ParseLevel(name string) (log.Level, error) {
	if strings.TrimSpace(name) == "" {
		return log.WarnLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.WarnLevel, fmt.Errorf("%w %q: %w", ErrInvalidLevel, name, err)
	}
	return level, nil
}

// New creates the launcher logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: false,
	})
}

// Setup creates the launcher logger and installs it as the slog default.
// An unknown level name falls back to warn and is reported once at warn level.
func Setup(w io.Writer, levelName string) *log.Logger {
	level, err := ParseLevel(levelName)
	logger := New(w, level)
	slog.SetDefault(slog.New(logger))
	if err != nil {
		slog.Warn("falling back to warn log level", "error", err)
	}
	return logger
}
