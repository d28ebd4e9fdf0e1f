// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is returned when CUE input exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

type (
	// Problem is a single CUE diagnostic located by its field path.
	Problem struct {
		// Path is rendered JSON-style, e.g. "search_paths[1]". Empty for
		// errors that are not attached to a field.
		Path    string
		Message string
	}

	// DecodeError reports every problem CUE found in one file.
	DecodeError struct {
		File     string
		Problems []Problem
		cause    error
	}
)

func (e *DecodeError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	if len(lines) == 1 {
		return e.File + ": " + lines[0]
	}
	return e.File + ": validation failed:\n  " + strings.Join(lines, "\n  ")
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// FormatError turns a CUE evaluation error into a *DecodeError whose message
// reads "<file>: <path>: <message>". Errors CUE does not know about are
// wrapped with the file name only.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	// cueerrors.Errors wraps plain errors too, so check the type first.
	var ce cueerrors.Error
	if !errors.As(err, &ce) {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	de := &DecodeError{File: filePath, cause: err}
	for _, e := range cueerrors.Errors(err) {
		path := formatPath(cueerrors.Path(e))
		msg := e.Error()
		// CUE sometimes repeats the field path at the start of the message.
		if path != "" {
			if rest, ok := strings.CutPrefix(msg, path); ok {
				msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			}
		}
		de.Problems = append(de.Problems, Problem{Path: path, Message: msg})
	}
	return de
}

// formatPath renders ["search_paths", "0"] as "search_paths[0]".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize fails with ErrFileTooLarge when data is over maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: %w: %d bytes exceeds maximum %d bytes", filename, ErrFileTooLarge, size, maxSize)
	}
	return nil
}
