package formatter

import (
	"fmt"
	"strings"

	"github.com/tulikamejora/homework-help/internal/catalog"
	"github.com/tulikamejora/homework-help/internal/domain"
)

// History list column caps, in terminal cells.
const (
	subjectColumnWidth = 26
	lengthColumnWidth  = 28
)

// FormatHistoryList renders history records as a table, most recent first.
func FormatHistoryList(records []domain.HistoryRecord) string {
	if len(records) == 0 {
		return FormatEmptyHistory()
	}

	headers := []string{"ID", "SUBJECT", "LEVEL", "LENGTH", "CREATED"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(r.ID),
			r.Config.Subject,
			r.Config.EducationLevel,
			r.Config.Length,
			HumanTimestamp(r.CreatedAt),
		})
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("My Mad Lib Collection (%d)", len(records))))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows,
		WithMaxWidth(1, subjectColumnWidth),
		WithMaxWidth(3, lengthColumnWidth),
	))
	return b.String()
}

// FormatEmptyHistory is shown when nothing has been generated yet.
func FormatEmptyHistory() string {
	return Dim("No homework generated yet.") + "\n" +
		Dim("Your generated assignments will appear here for easy access.") + "\n"
}

// FormatHistoryEntry renders one record as a compact card: title, date,
// selections and a truncated preview of the document.
func FormatHistoryEntry(r domain.HistoryRecord) string {
	var b strings.Builder
	b.WriteString(Bold(r.Title()))
	b.WriteString("  ")
	b.WriteString(Dim(HumanTimestamp(r.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s · %s", r.Config.EducationLevel, r.Config.Length)))
	b.WriteString("\n")
	if cat, ok := catalog.CategoryOf(r.Config.Subject); ok {
		b.WriteString(Dim("Category: " + cat))
		b.WriteString("\n")
	}
	if r.Config.CustomTopic != "" {
		b.WriteString(Dim("Topic: " + r.Config.CustomTopic))
		b.WriteString("\n")
	}
	b.WriteString(Preview(r.Document))
	b.WriteString("\n")
	return b.String()
}

// FormatRecord renders a full record: metadata followed by the document.
func FormatRecord(r domain.HistoryRecord) string {
	var b strings.Builder
	b.WriteString(Header(r.Title()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:     "), r.ID)
	fmt.Fprintf(&b, "%s %s\n", Dim("Created:"), HumanTimestamp(r.CreatedAt))
	fmt.Fprintf(&b, "%s %s\n", Dim("Subject:"), r.Config.Subject)
	if cat, ok := catalog.CategoryOf(r.Config.Subject); ok {
		fmt.Fprintf(&b, "%s %s\n", Dim("Area:   "), cat)
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Level:  "), r.Config.EducationLevel)
	fmt.Fprintf(&b, "%s %s\n", Dim("Length: "), r.Config.Length)
	if r.Config.CustomTopic != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Topic:  "), r.Config.CustomTopic)
	}
	b.WriteString("\n")
	b.WriteString(r.Document)
	b.WriteString("\n")
	return b.String()
}

// FormatConfiguration renders the current selections with a completion bar.
func FormatConfiguration(cfg domain.Configuration) string {
	var b strings.Builder
	b.WriteString(RenderCompletion(cfg.CompletionRatio(), 24))
	b.WriteString("\n\n")
	for _, f := range []domain.Field{
		domain.FieldSubject,
		domain.FieldLength,
		domain.FieldEducationLevel,
		domain.FieldCustomTopic,
	} {
		fmt.Fprintf(&b, "  %-16s %s\n", f.Label()+":", Selection(cfg.Get(f)))
	}
	return b.String()
}
