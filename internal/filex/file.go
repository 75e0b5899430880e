// Package filex has the small filesystem helpers the CLI uses to keep
// downloaded sighting photos.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (relative paths resolve against the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// SafeName turns an arbitrary label into a file name component: path
// separators and anything outside [A-Za-z0-9._-] become '_'.
func SafeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// WriteInDir writes data to dir/SafeName(name).ext, creating dir first, and
// returns the full path. An existing file is overwritten.
func WriteInDir(dir, name, ext string, data []byte) (string, error) {
	abs, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}

	file := SafeName(name)
	if ext != "" {
		file += "." + strings.TrimPrefix(ext, ".")
	}
	path := filepath.Join(abs, file)

	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
