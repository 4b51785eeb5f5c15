package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tulikamejora/homework-help/internal/catalog"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
	"github.com/tulikamejora/homework-help/internal/domain"
	"github.com/tulikamejora/homework-help/internal/export"
)

// Notification texts shared by the CLI and TUI.
const (
	msgGenerated  = "🎉 Ta-da! Your Mad Lib is Ready!"
	msgGenerating = "Creating Your Mad Lib Magic..."
	msgMissing    = "🚨 Oops! Missing Mad Lib Words!"
	msgCopied     = "Copied! Homework has been copied to clipboard."
	msgDownloaded = "Downloaded! Homework has been saved to %s."
	msgCleared    = "Cleared! Results have been cleared."
	msgDeleted    = "Deleted! Homework has been removed from history."
)

func newGenerateCmd(app *App) *cobra.Command {
	subject := newCatalogValue("subject", catalog.SubjectLabels())
	length := newCatalogValue("length", catalog.Lengths())
	level := newCatalogValue("level", catalog.EducationLevels())
	var topic, outDir string
	var copyOut, noDelay bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a homework assignment",
		Long: `Generate a homework assignment from a subject, a length and an
education level. Values may be full catalog labels or any unique part of
one, e.g. --subject biology --length "just right" --level college.`,
		Example: `  homework generate --subject biology --length epic --level "high school"
  homework generate --subject algebra --length quick --level elementary --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := domain.Configuration{
				Subject:        subject.String(),
				Length:         length.String(),
				EducationLevel: level.String(),
			}
			if err := cfg.SetField(domain.FieldCustomTopic, topic); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%s %w", msgMissing, err)
			}

			svc := app.Homework
			if noDelay && app.Instant != nil {
				svc = app.Instant
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), msgGenerating)
			}
			rec, err := svc.Generate(cmd.Context(), cfg)
			stop()
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			fmt.Fprintln(errOut, formatter.Success(msgGenerated)+" "+formatter.Dim(rec.ID))
			fmt.Fprintln(cmd.OutOrStdout(), rec.Document)

			if copyOut {
				if err := app.copyText(rec.Document); err != nil {
					fmt.Fprintln(errOut, formatter.Error(err.Error()))
				} else {
					fmt.Fprintln(errOut, formatter.Success(msgCopied))
				}
			}
			if cmd.Flags().Changed("out") {
				path, err := export.WriteFile(outDir, export.CurrentFilename, rec.Document)
				if err != nil {
					return err
				}
				fmt.Fprintln(errOut, formatter.Success(fmt.Sprintf(msgDownloaded, path)))
			}
			return nil
		},
	}

	cmd.Flags().Var(subject, "subject", "Subject label or unique part of one")
	cmd.Flags().Var(length, "length", "Length band or unique part of one")
	cmd.Flags().Var(level, "level", "Education level or unique part of one")
	cmd.Flags().StringVar(&topic, "topic", "", "Optional custom topic")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the assignment to the clipboard")
	cmd.Flags().StringVar(&outDir, "out", app.ExportDir, "Also save the assignment to "+export.CurrentFilename+" in this directory")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the generation delay")

	return cmd
}
