package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TimestampLayout formats record creation times, e.g. "Mar 5, 2025, 02:30 PM".
const TimestampLayout = "Jan 2, 2006, 03:04 PM"

// PreviewLimit is how many characters of a document history listings show.
const PreviewLimit = 200

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanTimestamp formats t in local time using TimestampLayout.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// Preview returns at most the first PreviewLimit characters of a document
// followed by "...", whatever its length. Characters are counted as runes so
// emoji are never split.
func Preview(doc string) string {
	r := []rune(doc)
	if len(r) > PreviewLimit {
		r = r[:PreviewLimit]
	}
	return string(r) + "..."
}
