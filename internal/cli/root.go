package cli

import (
	"github.com/spf13/cobra"
	"github.com/tulikamejora/homework-help/internal/export"
	"github.com/tulikamejora/homework-help/internal/service"
	"go.uber.org/zap"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Homework service.HomeworkService
	History  service.HistoryService

	// Instant generates without the artificial delay (--no-delay). Nil
	// falls back to Homework.
	Instant service.HomeworkService

	// ExportDir is the default directory for downloads.
	ExportDir string

	Logger *zap.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool

	// RunTUI starts the interactive interface. Nil uses runTUI; tests
	// replace it to avoid taking over the terminal.
	RunTUI func(app *App) error

	// CopyText writes to the system clipboard. Nil uses export.Copy.
	CopyText func(text string) error
}

func (a *App) copyText(text string) error {
	if a.CopyText == nil {
		return export.Copy(text)
	}
	return a.CopyText(text)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "homework" command and registers all
// subcommands against the provided App. Run without arguments on a
// terminal, it opens the interactive TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "homework",
		Short: "Mad Lib homework assignment generator",
		Long: `Pick a subject, a length and an education level, then generate a
ready-to-use homework assignment. Generated assignments are kept in a
short history you can copy, download or delete.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			run := app.RunTUI
			if run == nil {
				run = runTUI
			}
			return run(app)
		},
	}

	// Read by main before the logger is built; registered here so cobra
	// accepts and documents it.
	root.PersistentFlags().BoolP("verbose", "v", false, "Write debug-level logs")

	root.AddCommand(
		newGenerateCmd(app),
		newHistoryCmd(app),
		newCatalogCmd(),
		newGuideCmd(),
	)

	return root
}
