package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
	"github.com/tulikamejora/homework-help/internal/domain"
	"github.com/tulikamejora/homework-help/internal/export"
	"go.uber.org/zap"
)

// historyView lists past generations with a preview of the selected one.
type historyView struct {
	state   *SharedState
	records []domain.HistoryRecord
	cursor  int
}

func newHistoryView(state *SharedState) *historyView {
	v := &historyView{state: state}
	v.reload()
	return v
}

func (v *historyView) reload() {
	v.records = v.state.App.History.List(v.state.Context())
	if v.cursor >= len(v.records) {
		v.cursor = max(len(v.records)-1, 0)
	}
}

func (v *historyView) selected() (domain.HistoryRecord, bool) {
	if v.cursor < 0 || v.cursor >= len(v.records) {
		return domain.HistoryRecord{}, false
	}
	return v.records[v.cursor], true
}

func (v *historyView) Init() tea.Cmd { return nil }

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.records)-1 {
				v.cursor++
			}
		case "enter":
			if rec, ok := v.selected(); ok {
				return v, pushView(newResultView(v.state, rec, false))
			}
		case "c":
			return v, v.copySelected()
		case "d":
			return v, v.downloadSelected()
		case "x":
			return v, v.deleteSelected()
		}
	}
	return v, nil
}

func (v *historyView) copySelected() tea.Cmd {
	rec, ok := v.selected()
	if !ok {
		return nil
	}
	if err := v.state.App.copyText(rec.Document); err != nil {
		return notifyErr(err.Error())
	}
	return notify(msgCopied)
}

func (v *historyView) downloadSelected() tea.Cmd {
	rec, ok := v.selected()
	if !ok {
		return nil
	}
	path, err := export.WriteFile(v.state.App.ExportDir, export.HistoryFilename(rec.ID), rec.Document)
	if err != nil {
		return notifyErr(err.Error())
	}
	return notify(fmt.Sprintf(msgDownloaded, path))
}

func (v *historyView) deleteSelected() tea.Cmd {
	rec, ok := v.selected()
	if !ok {
		return nil
	}
	if _, err := v.state.App.History.Delete(v.state.Context(), rec.ID); err != nil {
		return notifyErr(err.Error())
	}
	v.state.App.logger().Debug("history record deleted", zap.String("id", rec.ID))
	v.reload()
	return notify(msgDeleted)
}

func (v *historyView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("📚 My Mad Lib Collection (%d)", len(v.records))))
	b.WriteString("\n\n")

	if len(v.records) == 0 {
		b.WriteString(formatter.FormatEmptyHistory())
		return b.String()
	}

	for i, r := range v.records {
		cursor := "  "
		title := r.Title()
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			title = formatter.Bold(title)
		}
		b.WriteString(cursor + title + "  " + formatter.Dim(formatter.HumanTimestamp(r.CreatedAt)) + "\n")
	}

	if rec, ok := v.selected(); ok {
		b.WriteString("\n")
		b.WriteString(formatter.RenderBox("", formatter.FormatHistoryEntry(rec)))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }
func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}
