package cli

import (
	"context"
	"testing"

	"github.com/tulikamejora/homework-help/internal/domain"
	"github.com/tulikamejora/homework-help/internal/generation"
	"github.com/tulikamejora/homework-help/internal/history"
	"github.com/tulikamejora/homework-help/internal/service"
	"github.com/tulikamejora/homework-help/internal/teatest"
	"github.com/tulikamejora/homework-help/internal/testutil"
)

// syncHomework generates and records on the calling goroutine so the
// synchronous driver sees the result within its command timeout.
type syncHomework struct {
	store *history.Store
	calls int
}

func (s *syncHomework) Generate(ctx context.Context, cfg domain.Configuration) (*domain.HistoryRecord, error) {
	s.calls++
	doc, err := generation.Synthesize(cfg)
	if err != nil {
		return nil, err
	}
	rec := testutil.NewTestRecord(testutil.WithConfig(cfg), testutil.WithDocument(doc))
	s.store.Append(ctx, rec)
	return &rec, nil
}

// tuiApp wires an App over an in-memory history store.
func tuiApp(t *testing.T) (*App, *syncHomework, *clipboardRecorder) {
	t.Helper()
	store := history.NewStore(nil)
	hw := &syncHomework{store: store}
	clip := &clipboardRecorder{}
	return &App{
		Homework:  hw,
		History:   service.NewHistoryService(store, nil),
		ExportDir: t.TempDir(),
		CopyText:  clip.copy,
	}, hw, clip
}

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state, notification line) that the generic
// driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Pick opens the picker bound to key, moves down n options and selects.
func (d *TestDriver) Pick(key rune, down int) {
	d.T.Helper()
	d.PressKey(key)
	for i := 0; i < down; i++ {
		d.PressDown()
	}
	d.PressEnter()
}

// CompleteConfig picks the first option of every required field.
func (d *TestDriver) CompleteConfig() {
	d.T.Helper()
	d.Pick('s', 0)
	d.Pick('l', 0)
	d.Pick('e', 0)
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Notice returns the current notification text and whether it is an error.
func (d *TestDriver) Notice() (string, bool) {
	m := d.appModel()
	return m.notice, m.noticeIsErr
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
