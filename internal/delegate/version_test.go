// SPDX-License-Identifier: MPL-2.0

package delegate

import "testing"

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"v20.11.1\n", "v20.11.1"},
		{"20.11.1", "v20.11.1"},
		{"node v18.19.0", "v18.19.0"},
		{"v22", "v22.0.0"},
		{"", ""},
		{"not a version", ""},
	}
	for _, tt := range tests {
		if got := ParseVersion(tt.in); got != tt.want {
			t.Errorf("ParseVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version, minimum string
		want             bool
	}{
		{"v20.11.1", "20.0.0", true},
		{"v20.0.0", "v20.0.0", true},
		{"v18.19.0", "20.0.0", false},
		{"v18.19.0", "", true},
		{"v18.19.0", "garbage", true},
		{"garbage", "20.0.0", false},
	}
	for _, tt := range tests {
		if got := MeetsMinimum(tt.version, tt.minimum); got != tt.want {
			t.Errorf("MeetsMinimum(%q, %q) = %v, want %v", tt.version, tt.minimum, got, tt.want)
		}
	}
}
