package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "Mar 5, 2025, 02:30 PM", HumanTimestamp(ts))

	morning := time.Date(2024, 12, 25, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "Dec 25, 2024, 09:05 AM", HumanTimestamp(morning))
}

func TestPreview(t *testing.T) {
	t.Run("short document gets ellipsis", func(t *testing.T) {
		assert.Equal(t, "hello...", Preview("hello"))
	})

	t.Run("exactly the limit still ends in ellipsis", func(t *testing.T) {
		doc := strings.Repeat("a", PreviewLimit)
		assert.Equal(t, doc+"...", Preview(doc))
	})

	t.Run("long document truncated with ellipsis", func(t *testing.T) {
		doc := strings.Repeat("b", PreviewLimit+50)
		got := Preview(doc)
		assert.Equal(t, strings.Repeat("b", PreviewLimit)+"...", got)
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		doc := strings.Repeat("🧬", PreviewLimit+1)
		got := Preview(doc)
		assert.Equal(t, PreviewLimit+3, len([]rune(got)))
		assert.True(t, strings.HasSuffix(got, "🧬..."))
	})
}

func TestRenderBox(t *testing.T) {
	got := stripANSI(RenderBox("result", "body text"))
	assert.Contains(t, got, "RESULT")
	assert.Contains(t, got, "body text")
	assert.Contains(t, got, "╭")

	untitled := stripANSI(RenderBox("", "only body"))
	assert.Contains(t, untitled, "only body")
}

func TestRenderTable(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "LONGER"}, [][]string{{"value-one", "x"}}))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "A        "))
	assert.Contains(t, lines[1], "─")
	assert.True(t, strings.HasPrefix(lines[2], "value-one  x"))

	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_MaxWidth(t *testing.T) {
	rows := [][]string{{"abcdefghij", "keep-this-whole"}}
	got := stripANSI(RenderTable([]string{"A", "B"}, rows, WithMaxWidth(0, 6)))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "abcde…  keep-this-whole"))
	assert.Equal(t, "──────", strings.Fields(lines[1])[0])
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "B", "C"}, [][]string{{"x"}}))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "x"))
}
