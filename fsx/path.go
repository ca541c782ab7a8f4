// Package fsx wraps common path, file and directory chores.
package fsx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Errors returned by fsx.
var (
	ErrInvalidPath = errors.New("invalid path")
	ErrFileExists  = errors.New("file already exists")
)

// InvalidPathChars lists characters rejected in paths: the control
// characters 0x00-0x1F, then '"', '<', '>' and '|'.
var InvalidPathChars = func() []rune {
	chars := []rune{'"', '<', '>', '|'}
	for c := rune(0); c < 0x20; c++ {
		chars = append(chars, c)
	}
	return chars
}()

// InvalidPathError reports the invalid characters found in Path.
type InvalidPathError struct {
	Path  string
	Chars []rune
}

func (e *InvalidPathError) Error() string {
	quoted := make([]string, len(e.Chars))
	for i, c := range e.Chars {
		quoted[i] = strconv.QuoteRune(c)
	}
	if len(quoted) == 1 {
		return "path contains an invalid character: " + quoted[0]
	}
	return "path contains invalid characters: " + strings.Join(quoted, ", ")
}

func (e *InvalidPathError) Unwrap() error {
	return ErrInvalidPath
}

// InvalidChars returns each invalid character present in path, in the
// order of InvalidPathChars.
func InvalidChars(path string) []rune {
	var found []rune
	for _, c := range InvalidPathChars {
		if strings.ContainsRune(path, c) {
			found = append(found, c)
		}
	}
	return found
}

// HasInvalidChars reports whether path contains any invalid character.
func HasInvalidChars(path string) bool {
	return strings.ContainsFunc(path, func(r rune) bool {
		return slices.Contains(InvalidPathChars, r)
	})
}

// ValidatePath returns an *InvalidPathError if path has invalid characters.
func ValidatePath(path string) error {
	if chars := InvalidChars(path); len(chars) > 0 {
		return &InvalidPathError{Path: path, Chars: chars}
	}
	return nil
}

// EnsureDir creates path and any missing parents, and returns the
// cleaned path.
func EnsureDir(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	return filepath.Clean(path), nil
}

// HasExtension reports whether path's extension equals one of exts.
// Extensions include the leading dot and match case-sensitively.
func HasExtension(path string, exts ...string) bool {
	return slices.Contains(exts, filepath.Ext(path))
}

// NameWithoutExt returns the base name of path without its extension.
func NameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
