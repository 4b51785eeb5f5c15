package cli

import (
	"context"

	"github.com/tulikamejora/homework-help/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Selections being edited on the home view.
	Config domain.Configuration

	// Current is the most recent generation result shown on the result
	// view. Clearing it does not touch history.
	Current *domain.HistoryRecord

	// Generating is true while a generation is in flight.
	Generating bool

	// Terminal dimensions
	Width  int
	Height int

	// ctx is cancelled when the TUI quits, abandoning any in-flight
	// generation.
	ctx    context.Context
	cancel context.CancelFunc
}

func newSharedState(app *App) *SharedState {
	ctx, cancel := context.WithCancel(context.Background())
	return &SharedState{App: app, ctx: ctx, cancel: cancel}
}

// Context returns the TUI lifetime context.
func (s *SharedState) Context() context.Context {
	return s.ctx
}

// Shutdown cancels the TUI lifetime context.
func (s *SharedState) Shutdown() {
	s.cancel()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator), the notification
// line, and status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
