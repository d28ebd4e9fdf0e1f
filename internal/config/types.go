// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"github.com/iechor-research/research-launcher/pkg/types"
)

var (
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidLogLevel is returned for an unknown log_level value.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type (
	// Config holds the launcher settings.
	Config struct {
		// Interpreter is the program that executes the module (default "node").
		Interpreter string `json:"interpreter" mapstructure:"interpreter"`
		// VersionArgs are passed to the interpreter for the availability probe.
		VersionArgs []string `json:"version_args" mapstructure:"version_args"`
		// MinVersion is the oldest supported interpreter version. Advisory only.
		MinVersion string `json:"min_version" mapstructure:"min_version"`
		// Precheck enables the interpreter availability probe.
		Precheck bool `json:"precheck" mapstructure:"precheck"`
		// PrecheckTimeout bounds the probe.
		PrecheckTimeout time.Duration `json:"precheck_timeout" mapstructure:"precheck_timeout"`
		// SearchPaths are extra install roots probed after the built-in tiers.
		SearchPaths []string `json:"search_paths" mapstructure:"search_paths"`
		// LogLevel is one of debug, info, warn, error.
		LogLevel string `json:"log_level" mapstructure:"log_level"`
		// DryRun prints the resolved command line instead of running it.
		DryRun bool `json:"dry_run" mapstructure:"dry_run"`
	}

	// InvalidConfigError is returned when decoded settings are inconsistent.
	// It wraps ErrInvalidConfig and the per-field errors.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the settings used when no file or override is present.
func DefaultConfig() *Config {
	return &Config{
		Interpreter:     "node",
		VersionArgs:     []string{"--version"},
		MinVersion:      "20.0.0",
		Precheck:        true,
		PrecheckTimeout: 10 * time.Second,
		SearchPaths:     []string{},
		LogLevel:        "warn",
		DryRun:          false,
	}
}

// Validate checks constraints that survive environment overrides, which
// bypass the CUE schema.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Interpreter) == "" {
		errs = append(errs, errors.New("interpreter must not be empty"))
	}
	if c.PrecheckTimeout < 0 {
		errs = append(errs, fmt.Errorf("precheck_timeout %s must not be negative", c.PrecheckTimeout))
	}
	if c.MinVersion != "" {
		v := c.MinVersion
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		if !semver.IsValid(v) {
			errs = append(errs, fmt.Errorf("min_version %q is not a semantic version", c.MinVersion))
		}
	}
	for i, p := range c.SearchPaths {
		if err := types.FilesystemPath(p).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("search_paths[%d]: %w", i, err))
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel))
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidConfig, errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
