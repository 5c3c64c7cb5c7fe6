// Package persist writes filtered documents to disk with change detection.
package persist

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ReadExisting returns the current content of path, or an empty string
// when the file does not exist yet.
func ReadExisting(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided via config.
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing output: %w", err)
	}
	return string(data), nil
}

// Changed reports whether content differs from the previous content.
// The comparison is byte-for-byte.
func Changed(previous, content string) bool {
	return previous != content
}

// Save writes content to path unless previous already equals it, making
// scheduled runs no-ops when nothing changed upstream. It reports
// whether a write occurred.
func Save(path string, content string, previous string, log *slog.Logger) (bool, error) {
	if log == nil {
		log = slog.Default()
	}

	if !Changed(previous, content) {
		log.Info("content unchanged, skipping write", "file", path)
		return false, nil
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return false, fmt.Errorf("write output: %w", err)
	}

	log.Info("saved filtered result", "file", path,
		"bytes", len(content), "lines", countLines(content))
	return true, nil
}

// countLines counts document lines without treating a trailing newline
// as starting one more line.
func countLines(content string) int {
	count := strings.Count(content, "\n") + 1
	if strings.HasSuffix(content, "\n") {
		count--
	}
	return count
}
