package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := clipboardWriteAll
	clipboardWriteAll = fn
	t.Cleanup(func() { clipboardWriteAll = orig })
}

func TestHistoryFilename(t *testing.T) {
	assert.Equal(t, "homework-0190a1b2.txt", HistoryFilename("0190a1b2"))
}

func TestWriteFile_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	path, err := WriteFile(dir, CurrentFilename, "# Doc\nbody")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, CurrentFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Doc\nbody", string(data))
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteFile(dir, "a.txt", "one")
	require.NoError(t, err)
	path, err := WriteFile(dir, "a.txt", "two")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestCopy_WritesVerbatim(t *testing.T) {
	var got string
	stubClipboard(t, func(s string) error { got = s; return nil })

	require.NoError(t, Copy("  exact text\n"))
	assert.Equal(t, "  exact text\n", got)
}

func TestCopy_FailureWrapped(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no xclip") })

	err := Copy("text")
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "no xclip")
}
