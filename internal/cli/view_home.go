package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
	"github.com/tulikamejora/homework-help/internal/domain"
	"go.uber.org/zap"
)

// homeView shows the current selections and a completion bar, and opens
// the pickers that edit them.
type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "s":
		return v, v.pick(domain.FieldSubject)
	case "l":
		return v, v.pick(domain.FieldLength)
	case "e":
		return v, v.pick(domain.FieldEducationLevel)
	case "t":
		return v, v.pick(domain.FieldCustomTopic)
	case "g", "enter":
		return v, v.generate()
	case "r":
		if v.state.Current != nil {
			return v, pushView(newResultView(v.state, *v.state.Current, true))
		}
	case "h":
		return v, pushView(newHistoryView(v.state))
	case "?":
		return v, pushView(newGuideView(v.state))
	}
	return v, nil
}

// pick opens the form for one field and applies the answer on completion.
func (v *homeView) pick(field domain.Field) tea.Cmd {
	value := new(string)
	*value = v.state.Config.Get(field)

	var form = wizardTopicInput(value)
	if field != domain.FieldCustomTopic {
		form = wizardSelectField(field, value)
	}

	return startWizardCmd(v.state, field.Label(), form, func() tea.Cmd {
		if err := v.state.Config.SetField(field, *value); err != nil {
			return notifyErr(err.Error())
		}
		v.state.App.logger().Debug("selection changed",
			zap.String("field", string(field)),
			zap.String("value", *value),
			zap.Int("completion", v.state.Config.CompletionRatio()),
		)
		return nil
	})
}

// generate starts a generation for the current selections. It is a no-op
// while another generation is in flight.
func (v *homeView) generate() tea.Cmd {
	if v.state.Generating {
		return nil
	}
	cfg := v.state.Config
	if err := cfg.Validate(); err != nil {
		return notifyErr(msgMissing + " Please fill in all the blanks to create your homework masterpiece! 🎨")
	}

	v.state.Generating = true
	ctx := v.state.Context()
	svc := v.state.App.Homework
	return tea.Batch(
		func() tea.Msg { return generationStartedMsg{} },
		func() tea.Msg {
			rec, err := svc.Generate(ctx, cfg)
			return generationDoneMsg{record: rec, err: err}
		},
	)
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.StyleHeader.Render("📝 Homework Mad Libs"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("Fill in the blanks and generate a ready-to-use assignment."))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatConfiguration(v.state.Config))

	if v.state.Current != nil {
		b.WriteString("\n")
		b.WriteString(formatter.Dim("Latest result: " + v.state.Current.Title() + " (r to view)"))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }
func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "subject")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "length")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "level")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "topic")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "guide")),
	}
}
