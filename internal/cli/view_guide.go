package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
)

// guideView shows the usage guide.
type guideView struct {
	state *SharedState
	vp    viewport.Model
}

func newGuideView(state *SharedState) *guideView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.SetContent("\n" + formatter.FormatGuide())
	return &guideView{state: state, vp: vp}
}

func (v *guideView) Init() tea.Cmd { return nil }

func (v *guideView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.vp.Width = size.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *guideView) View() string { return v.vp.View() }

func (v *guideView) ID() ViewID    { return ViewGuide }
func (v *guideView) Title() string { return "Guide" }
func (v *guideView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}
