package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the spacing between table columns.
const colGap = 2

// TableOption adjusts how RenderTable lays out columns.
type TableOption func(*tableLayout)

type tableLayout struct {
	maxWidths map[int]int
}

// WithMaxWidth caps the visible width of column col. Longer cells are cut
// and end in "…". Catalog labels carry emoji and long word-count suffixes,
// so the history list caps those columns to keep rows on one line.
func WithMaxWidth(col, width int) TableOption {
	return func(l *tableLayout) {
		l.maxWidths[col] = width
	}
}

// RenderTable renders an aligned table with a header separator line.
// Widths are measured in terminal cells, so styled cells and emoji line up.
func RenderTable(headers []string, rows [][]string, opts ...TableOption) string {
	if len(headers) == 0 {
		return ""
	}
	layout := tableLayout{maxWidths: map[int]int{}}
	for _, opt := range opts {
		opt(&layout)
	}

	cols := len(headers)
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, cols)
		for i := 0; i < cols && i < len(row); i++ {
			cells[r][i] = fitCell(row[i], layout.maxWidths[i])
		}
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow := func(row []string, style func(string) string) {
		for i, cell := range row {
			b.WriteString(style(cell))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	rules := make([]string, cols)
	for i, w := range widths {
		rules[i] = strings.Repeat("─", w)
	}
	writeRow(rules, func(s string) string { return StyleDim.Render(s) })

	for _, row := range cells {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}

// fitCell cuts cell to at most width terminal cells. Zero means no limit.
func fitCell(cell string, width int) string {
	if width <= 0 || lipgloss.Width(cell) <= width {
		return cell
	}
	var b strings.Builder
	for _, r := range cell {
		if lipgloss.Width(b.String()+string(r))+1 > width {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
