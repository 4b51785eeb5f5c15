package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
	"go.uber.org/zap"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack, the generation spinner and the notification line.
type appModel struct {
	state     *SharedState
	viewStack []View
	spinner   spinner.Model
	quitting  bool

	// Transient notification, cleared by the next key press.
	notice      string
	noticeIsErr bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	m := appModel{
		state:   state,
		spinner: sp,
	}

	// Start with the home view.
	m.viewStack = []View{newHomeView(state)}

	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Forward to active view
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Navigation messages from views
	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views (e.g. history)
		// reload data after mutations made in views above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case notifyMsg:
		m.notice = msg.text
		m.noticeIsErr = msg.isErr
		return m, nil

	case generationStartedMsg:
		return m, m.spinner.Tick

	case spinner.TickMsg:
		if !m.state.Generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generationDoneMsg:
		return m.handleGenerationDone(msg)
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleGenerationDone(msg generationDoneMsg) (tea.Model, tea.Cmd) {
	m.state.Generating = false
	log := m.state.App.logger()

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		log.Warn("generation failed", zap.Error(msg.err))
		m.notice = msg.err.Error()
		m.noticeIsErr = true
		return m, nil
	}

	m.state.Current = msg.record
	m.notice = msgGenerated + " Your hilarious homework assignment has been created! 🎭✨"
	m.noticeIsErr = false

	result := newResultView(m.state, *msg.record, true)
	if v := m.activeView(); v != nil && v.ID() == ViewResult {
		return m, replaceView(result)
	}
	return m, pushView(result)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	m.notice = ""

	// If active view captures input (a form), forward directly.
	// This bypasses global keybindings so text inputs receive 'q' etc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	// Global keys
	switch {
	case msg.String() == "q":
		return m.quit()

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// quit cancels any in-flight generation and stops the program.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.state.Shutdown()
	m.quitting = true
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	// Header
	sections = append(sections, m.renderHeader())

	// Spinner or notification line
	sections = append(sections, m.renderNotice())

	// Content area
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	// Status/shortcut bar
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("homework")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + breadcrumb + "\n" + sep
}

func (m *appModel) renderNotice() string {
	switch {
	case m.state.Generating:
		return m.spinner.View() + " " + formatter.Dim(msgGenerating)
	case m.notice == "":
		return ""
	case m.noticeIsErr:
		return formatter.Error(m.notice)
	default:
		return formatter.Success(m.notice)
	}
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	if v := m.activeView(); v == nil || !viewCapturesInput(v) {
		hints = append(hints, formatter.Dim("q: quit"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view has its own input
// and should receive all key events (bypassing global keybindings like q/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewForm
}

// runTUI starts the interactive interface in the alternate screen.
func runTUI(app *App) error {
	m := newAppModel(app)
	defer m.state.Shutdown()

	app.logger().Info("tui started")
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
