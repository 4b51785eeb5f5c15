package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulikamejora/homework-help/internal/catalog"
	"github.com/tulikamejora/homework-help/internal/export"
	"github.com/tulikamejora/homework-help/internal/testutil"
)

func TestTUI_StartsOnHome(t *testing.T) {
	app, _, _ := tuiApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Contains(t, d.View(), "Homework Mad Libs")
	assert.Contains(t, d.View(), "0%")
}

func TestTUI_PickersUpdateConfiguration(t *testing.T) {
	app, _, _ := tuiApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	d.PressEnter()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, catalog.SurpriseMe, d.State().Config.Subject)
	assert.Equal(t, 33, d.State().Config.CompletionRatio())

	d.Pick('l', 2)
	assert.Equal(t, catalog.Lengths()[2], d.State().Config.Length)

	d.Pick('e', 3)
	assert.Equal(t, catalog.EducationLevels()[3], d.State().Config.EducationLevel)
	assert.Equal(t, 100, d.State().Config.CompletionRatio())
	assert.Contains(t, d.View(), "Ready to generate!")
}

func TestTUI_PickerCancelKeepsSelection(t *testing.T) {
	app, _, _ := tuiApp(t)
	d := NewTestDriver(t, app)
	d.Pick('s', 1)
	before := d.State().Config.Subject
	require.NotEmpty(t, before)

	d.PressKey('s')
	d.PressDown()
	d.PressEsc()

	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, before, d.State().Config.Subject)
}

func TestTUI_TopicInputCapturesKeys(t *testing.T) {
	app, _, _ := tuiApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('t')
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.Type("quantum")
	d.PressEnter()

	assert.False(t, d.IsQuitting(), "q typed into the topic must not quit")
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, "quantum", d.State().Config.CustomTopic)
}

func TestTUI_GenerateIncompleteShowsError(t *testing.T) {
	app, hw, _ := tuiApp(t)
	d := NewTestDriver(t, app)
	d.Pick('s', 0)

	d.PressKey('g')

	notice, isErr := d.Notice()
	assert.True(t, isErr)
	assert.Contains(t, notice, "Missing Mad Lib Words")
	assert.Equal(t, 0, hw.calls)
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Empty(t, app.History.List(context.Background()))

	// Notification clears on the next key.
	d.PressKey('z')
	notice, _ = d.Notice()
	assert.Empty(t, notice)
}

func TestTUI_GenerateShowsResultAndRecordsHistory(t *testing.T) {
	app, hw, _ := tuiApp(t)
	d := NewTestDriver(t, app)
	d.CompleteConfig()

	d.PressKey('g')

	assert.Equal(t, 1, hw.calls)
	assert.False(t, d.State().Generating)
	assert.Equal(t, ViewResult, d.ActiveViewID())
	require.NotNil(t, d.State().Current)

	notice, isErr := d.Notice()
	assert.False(t, isErr)
	assert.Contains(t, notice, msgGenerated)

	list := app.History.List(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, d.State().Current.ID, list[0].ID)
	assert.Contains(t, d.View(), "Assignment Overview")
}

func TestTUI_GenerateIgnoredWhileInFlight(t *testing.T) {
	app, hw, _ := tuiApp(t)
	d := NewTestDriver(t, app)
	d.CompleteConfig()
	d.State().Generating = true

	d.PressKey('g')
	assert.Equal(t, 0, hw.calls)
	assert.Equal(t, ViewHome, d.ActiveViewID())
}

func TestTUI_ResultCopyDownloadClear(t *testing.T) {
	app, _, clip := tuiApp(t)
	d := NewTestDriver(t, app)
	d.CompleteConfig()
	d.PressKey('g')
	require.Equal(t, ViewResult, d.ActiveViewID())
	doc := d.State().Current.Document

	d.PressKey('c')
	require.Len(t, clip.texts, 1)
	assert.Equal(t, doc, clip.texts[0])
	notice, _ := d.Notice()
	assert.Equal(t, msgCopied, notice)

	d.PressKey('d')
	data, err := os.ReadFile(filepath.Join(app.ExportDir, export.CurrentFilename))
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))

	d.PressKey('x')
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Nil(t, d.State().Current)
	notice, _ = d.Notice()
	assert.Equal(t, msgCleared, notice)
	assert.Len(t, app.History.List(context.Background()), 1, "clearing the result keeps history")
}

func TestTUI_CopyFailureShowsError(t *testing.T) {
	app, _, clip := tuiApp(t)
	clip.err = export.ErrClipboardUnavailable
	d := NewTestDriver(t, app)
	d.CompleteConfig()
	d.PressKey('g')

	d.PressKey('c')
	notice, isErr := d.Notice()
	assert.True(t, isErr)
	assert.Contains(t, notice, "clipboard unavailable")
}

func TestTUI_HistoryBrowseAndDelete(t *testing.T) {
	app, hw, clip := tuiApp(t)
	ctx := context.Background()
	older := testutil.NewTestRecord(testutil.WithDocument("older document"))
	newer := testutil.NewTestRecord(testutil.WithDocument("newer document"))
	hw.store.Append(ctx, older)
	hw.store.Append(ctx, newer)

	d := NewTestDriver(t, app)
	d.PressKey('h')
	require.Equal(t, ViewHistory, d.ActiveViewID())
	assert.Contains(t, d.View(), "newer document")

	d.PressDown()
	assert.Contains(t, d.View(), "older document")

	d.PressKey('c')
	require.Len(t, clip.texts, 1)
	assert.Equal(t, "older document", clip.texts[0])

	d.PressKey('d')
	_, err := os.Stat(filepath.Join(app.ExportDir, export.HistoryFilename(older.ID)))
	assert.NoError(t, err)

	d.PressKey('x')
	list := app.History.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, newer.ID, list[0].ID)
	notice, _ := d.Notice()
	assert.Equal(t, msgDeleted, notice)
}

func TestTUI_HistoryOpenRecordAndDelete(t *testing.T) {
	app, hw, _ := tuiApp(t)
	rec := testutil.NewTestRecord(testutil.WithDocument("full document body"))
	hw.store.Append(context.Background(), rec)

	d := NewTestDriver(t, app)
	d.PressKey('h')
	d.PressEnter()
	require.Equal(t, ViewResult, d.ActiveViewID())
	assert.Contains(t, d.View(), "full document body")

	d.PressKey('x')
	assert.Equal(t, ViewHistory, d.ActiveViewID())
	assert.Empty(t, app.History.List(context.Background()))
	assert.Contains(t, d.View(), "No homework generated yet.")
}

func TestTUI_GuideAndBack(t *testing.T) {
	app, _, _ := tuiApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('?')
	assert.Equal(t, ViewGuide, d.ActiveViewID())
	assert.Contains(t, d.View(), "Step 1: Configure Your Assignment")

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
}

func TestTUI_QuitCancelsContext(t *testing.T) {
	app, _, _ := tuiApp(t)
	d := NewTestDriver(t, app)
	ctx := d.State().Context()

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
	assert.Error(t, ctx.Err())
}
