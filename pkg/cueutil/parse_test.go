// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#Settings: {
	name?:  string & =~"\\S"
	count?: int & >=0
	tags?:  [...string]
}
`

type testSettings struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid struct", func(t *testing.T) {
		t.Parallel()

		res, err := ParseAndDecode[testSettings]([]byte(testSchema),
			[]byte(`name: "research"
count: 2
tags: ["a", "b"]`), "#Settings", WithFilename("settings.cue"))
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if res.Value.Name != "research" || res.Value.Count != 2 || len(res.Value.Tags) != 2 {
			t.Errorf("Value = %+v", res.Value)
		}
	})

	t.Run("optional fields decode into a map", func(t *testing.T) {
		t.Parallel()

		res, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`count: 3`), "#Settings")
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if len(*res.Value) != 1 {
			t.Errorf("Value = %v, want only count", *res.Value)
		}
	})

	t.Run("schema violation names the field", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`count: -1`), "#Settings",
			WithFilename("settings.cue"))
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "settings.cue") || !strings.Contains(err.Error(), "count") {
			t.Errorf("error = %v, want file name and field path", err)
		}
	})

	t.Run("closed definition rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`colour: "red"`), "#Settings"); err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`name: {`), "#Settings",
			WithFilename("settings.cue"))
		var de *DecodeError
		if !errors.As(err, &de) || de.File != "settings.cue" {
			t.Errorf("error = %v, want *DecodeError for settings.cue", err)
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`name: "x"`), "#Settings",
			WithMaxFileSize(4))
		if !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("error = %v, want size limit error", err)
		}
	})

	t.Run("missing definition", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`{}`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "internal error") {
			t.Errorf("error = %v, want internal error", err)
		}
	})
}
