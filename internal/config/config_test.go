// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/iechor-research/research-launcher/internal/issue"
	"github.com/iechor-research/research-launcher/internal/testutil"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	return testutil.Touch(t, dir, ConfigFileName+"."+ConfigFileExt, content)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Interpreter != "node" {
		t.Errorf("Interpreter = %q, want node", cfg.Interpreter)
	}
	if !slices.Equal(cfg.VersionArgs, []string{"--version"}) {
		t.Errorf("VersionArgs = %q", cfg.VersionArgs)
	}
	if !cfg.Precheck {
		t.Error("expected precheck to be enabled by default")
	}
	if cfg.PrecheckTimeout != 10*time.Second {
		t.Errorf("PrecheckTimeout = %s", cfg.PrecheckTimeout)
	}
	if len(cfg.SearchPaths) != 0 {
		t.Errorf("expected default search paths to be empty, got %v", cfg.SearchPaths)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.DryRun {
		t.Error("expected dry run to be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is Linux-only")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join(xdg, AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}

	home := t.TempDir()
	t.Cleanup(testutil.SetHomeDir(t, home))
	t.Setenv("XDG_CONFIG_HOME", "")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %s, want %s", dir, want)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if cfg.Interpreter != "node" || !cfg.Precheck {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := writeConfig(t, dir, `
interpreter:      "bun"
precheck_timeout: "1m30s"
search_paths: ["~/src/research-cli", "/opt/research"]
log_level: "debug"
`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != want {
		t.Errorf("resolved path = %q, want %q", path, want)
	}
	if cfg.Interpreter != "bun" {
		t.Errorf("Interpreter = %q, want bun", cfg.Interpreter)
	}
	if cfg.PrecheckTimeout != 90*time.Second {
		t.Errorf("PrecheckTimeout = %s, want 1m30s", cfg.PrecheckTimeout)
	}
	if !slices.Equal(cfg.SearchPaths, []string{"~/src/research-cli", "/opt/research"}) {
		t.Errorf("SearchPaths = %q", cfg.SearchPaths)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	// Unset keys keep their defaults.
	if cfg.MinVersion != "20.0.0" || !cfg.Precheck {
		t.Errorf("cfg = %+v, want defaults for unset keys", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `interpreter: "bun"`)

	t.Setenv(EnvPrefix+"_INTERPRETER", "sh")
	t.Setenv(EnvPrefix+"_VERSION_ARGS", "-c,exit 0")
	t.Setenv(EnvPrefix+"_PRECHECK", "false")
	t.Setenv(EnvPrefix+"_PRECHECK_TIMEOUT", "250ms")
	t.Setenv(EnvPrefix+"_DRY_RUN", "true")

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if cfg.Interpreter != "sh" {
		t.Errorf("Interpreter = %q, environment should win over the file", cfg.Interpreter)
	}
	if !slices.Equal(cfg.VersionArgs, []string{"-c", "exit 0"}) {
		t.Errorf("VersionArgs = %q", cfg.VersionArgs)
	}
	if cfg.Precheck {
		t.Error("Precheck should be disabled")
	}
	if cfg.PrecheckTimeout != 250*time.Millisecond {
		t.Errorf("PrecheckTimeout = %s", cfg.PrecheckTimeout)
	}
	if !cfg.DryRun {
		t.Error("DryRun should be enabled")
	}
}

func TestLoad_EnvOverrideValidated(t *testing.T) {
	t.Setenv(EnvPrefix+"_LOG_LEVEL", "chatty")

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("loadWithOptions() error = %v, want ErrInvalidLogLevel", err)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown key", `colour: "red"`, "colour"},
		{"wrong type", `precheck: "yes"`, "precheck"},
		{"bad duration", `precheck_timeout: "ten seconds"`, "precheck_timeout"},
		{"bad level", `log_level: "trace"`, "log_level"},
		{"blank search path", `search_paths: ["  "]`, "search_paths"},
		{"syntax", `interpreter: {`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("expected error")
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error %T is not *issue.ActionableError", err)
			}
			if !ae.HasSuggestions() {
				t.Error("expected remediation suggestions")
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "launcher.cue")
	if _, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: path}); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	testutil.Touch(t, filepath.Dir(path), "launcher.cue", `dry_run: true`)
	cfg, resolved, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: path,
		// The explicit file wins over the directory lookup.
		ConfigDirPath: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if resolved != path || !cfg.DryRun {
		t.Errorf("loadWithOptions() = (%+v, %q)", cfg, resolved)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"blank interpreter", func(c *Config) { c.Interpreter = "  " }, true},
		{"negative timeout", func(c *Config) { c.PrecheckTimeout = -time.Second }, true},
		{"v-prefixed min version", func(c *Config) { c.MinVersion = "v18" }, false},
		{"empty min version", func(c *Config) { c.MinVersion = "" }, false},
		{"bad min version", func(c *Config) { c.MinVersion = "latest" }, true},
		{"upper-case level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"blank search path", func(c *Config) { c.SearchPaths = []string{"/opt/x", " "} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error does not wrap ErrInvalidConfig: %v", err)
			}
		})
	}
}

func TestLoad_SkipFileKeepsEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `colour: "red"`)
	t.Setenv(EnvPrefix+"_INTERPRETER", "sh")

	if _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir}); err == nil {
		t.Fatal("expected error for the invalid file")
	}

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir, SkipFile: true})
	if err != nil {
		t.Fatalf("Load(SkipFile) error = %v", err)
	}
	if cfg.Interpreter != "sh" {
		t.Errorf("Interpreter = %q, want the environment override", cfg.Interpreter)
	}
}
