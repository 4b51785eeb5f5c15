package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tulikamejora/homework-help/internal/domain"
	"github.com/tulikamejora/homework-help/internal/export"
	"go.uber.org/zap"
)

// resultView shows one document in a scrollable viewport. In live mode it
// shows the latest generation and "x" clears it; otherwise it shows a
// history record and "x" deletes that record.
type resultView struct {
	state  *SharedState
	record domain.HistoryRecord
	live   bool
	vp     viewport.Model
}

func newResultView(state *SharedState, rec domain.HistoryRecord, live bool) *resultView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.SetContent(rec.Document)
	return &resultView{
		state:  state,
		record: rec,
		live:   live,
		vp:     vp,
	}
}

func (v *resultView) Init() tea.Cmd { return nil }

func (v *resultView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return v, v.copy()
		case "d":
			return v, v.download()
		case "x":
			return v, v.discard()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *resultView) copy() tea.Cmd {
	if err := v.state.App.copyText(v.record.Document); err != nil {
		v.state.App.logger().Warn("clipboard write failed", zap.Error(err))
		return notifyErr(err.Error())
	}
	return notify(msgCopied)
}

func (v *resultView) download() tea.Cmd {
	name := export.HistoryFilename(v.record.ID)
	if v.live {
		name = export.CurrentFilename
	}
	path, err := export.WriteFile(v.state.App.ExportDir, name, v.record.Document)
	if err != nil {
		v.state.App.logger().Warn("download failed", zap.Error(err))
		return notifyErr(err.Error())
	}
	return notify(fmt.Sprintf(msgDownloaded, path))
}

// discard clears the live result, or deletes the history record.
func (v *resultView) discard() tea.Cmd {
	if v.live {
		v.state.Current = nil
		return tea.Batch(popView(), notify(msgCleared))
	}
	if _, err := v.state.App.History.Delete(v.state.Context(), v.record.ID); err != nil {
		return notifyErr(err.Error())
	}
	return tea.Batch(
		popView(),
		func() tea.Msg { return refreshViewMsg{} },
		notify(msgDeleted),
	)
}

func (v *resultView) View() string {
	return v.vp.View()
}

func (v *resultView) ID() ViewID    { return ViewResult }
func (v *resultView) Title() string { return v.record.Title() }
func (v *resultView) ShortHelp() []key.Binding {
	discard := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete"))
	if v.live {
		discard = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear"))
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		discard,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}
