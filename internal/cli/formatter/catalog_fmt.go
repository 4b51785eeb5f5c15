package formatter

import (
	"strings"

	"github.com/tulikamejora/homework-help/internal/catalog"
)

// FormatSubjects renders the subject catalog grouped by category.
func FormatSubjects() string {
	var b strings.Builder
	b.WriteString(Header("Subjects"))
	b.WriteString("\n")
	b.WriteString("  " + StylePurple.Render(catalog.SurpriseMe) + "\n")
	for _, c := range catalog.Subjects() {
		b.WriteString("\n" + StyleBold.Render(c.Name) + "\n")
		for _, item := range c.Items {
			b.WriteString("  " + item + "\n")
		}
	}
	return b.String()
}

// FormatLengths renders the length bands.
func FormatLengths() string {
	return formatList("Lengths", catalog.Lengths())
}

// FormatEducationLevels renders the education levels.
func FormatEducationLevels() string {
	return formatList("Education Levels", catalog.EducationLevels())
}

func formatList(title string, items []string) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  " + item + "\n")
	}
	return b.String()
}
