// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "locate Research CLI module"},
			want: "failed to locate Research CLI module",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "/etc/config.cue"},
			want: "failed to load configuration: /etc/config.cue",
		},
		{
			name: "with resource and cause",
			err: &ActionableError{
				Operation: "start interpreter",
				Resource:  "node",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to start interpreter: node: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("specific error")
	wrapped := fmt.Errorf("launch: %w", NewErrorContext().
		WithOperation("probe interpreter").
		WithResource("node").
		Wrap(cause).
		BuildError())

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	var ae *ActionableError
	if !errors.As(wrapped, &ae) || ae.Resource != "node" {
		t.Errorf("errors.As() = %+v", ae)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "suggestions are bulleted",
			err: &ActionableError{
				Operation:   "locate Research CLI module",
				Suggestions: []string{"Set RESEARCH_CLI_HOME", "Run the installer"},
			},
			contains: []string{
				"failed to locate Research CLI module",
				"• Set RESEARCH_CLI_HOME",
				"• Run the installer",
			},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error"),
			},
			contains: []string{"failed to load configuration: syntax error"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "start interpreter",
				Cause: &ActionableError{
					Operation: "exec node",
					Cause:     errors.New("exec format error"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to exec node: exec format error",
				"2. exec format error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Format(tt.verbose)

			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := NewErrorContext().
		WithOperation("locate Research CLI module").
		WithResource("/opt/research-cli").
		WithSuggestion("first").
		WithSuggestion("").
		WithSuggestion("second").
		Wrap(cause).
		Build()

	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "locate Research CLI module" || ae.Resource != "/opt/research-cli" {
		t.Errorf("unexpected fields: %+v", ae)
	}
	if len(ae.Suggestions) != 2 || ae.Suggestions[0] != "first" || ae.Suggestions[1] != "second" {
		t.Errorf("Suggestions = %v, want [first second]", ae.Suggestions)
	}
	if !ae.HasSuggestions() {
		t.Error("HasSuggestions() = false")
	}
	if !errors.Is(ae, cause) {
		t.Error("built error does not wrap cause")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}
