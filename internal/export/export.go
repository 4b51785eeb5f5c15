// Package export delivers generated documents outside the application:
// to the system clipboard or to plain-text files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// CurrentFilename is the download name for the live (not yet historized)
// result.
const CurrentFilename = "homework-assignment.txt"

// ErrClipboardUnavailable wraps clipboard failures (no clipboard utility,
// headless session).
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// HistoryFilename returns the download name for a history record.
func HistoryFilename(id string) string {
	return fmt.Sprintf("homework-%s.txt", id)
}

// Copy writes text verbatim to the system clipboard.
func Copy(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}

// WriteFile saves text as dir/name and returns the written path. The
// directory is created if needed; an existing file is overwritten.
func WriteFile(dir, name, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
