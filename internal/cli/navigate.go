package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tulikamejora/homework-help/internal/domain"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// notifyMsg sets the transient notification line. It is cleared by the
// next key press.
type notifyMsg struct {
	text  string
	isErr bool
}

// generationStartedMsg starts the in-flight spinner.
type generationStartedMsg struct{}

// generationDoneMsg carries the outcome of a background generation.
type generationDoneMsg struct {
	record *domain.HistoryRecord
	err    error
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func notify(text string) tea.Cmd {
	return func() tea.Msg { return notifyMsg{text: text} }
}

func notifyErr(text string) tea.Cmd {
	return func() tea.Msg { return notifyMsg{text: text, isErr: true} }
}
