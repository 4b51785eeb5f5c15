package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
	"github.com/tulikamejora/homework-help/internal/export"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "Browse previously generated assignments",
		Long: `Browse the most recent generated assignments. Records are addressed
by id; any unique prefix of an id is accepted.`,
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryDeleteCmd(app),
		newHistoryCopyCmd(app),
		newHistoryExportCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved assignments, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := app.History.List(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistoryList(records))
			return nil
		},
	}
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecord(*rec))
			return nil
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a saved assignment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.History.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(msgDeleted)+" "+formatter.Dim(rec.ID))
			return nil
		},
	}
}

func newHistoryCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a saved assignment to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.copyText(rec.Document); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(msgCopied))
			return nil
		},
	}
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "export <id>",
		Aliases: []string{"download"},
		Short:   "Save a saved assignment as homework-<id>.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path, err := export.WriteFile(outDir, export.HistoryFilename(rec.ID), rec.Document)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(msgDownloaded, path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", app.ExportDir, "Directory to write the file to")

	return cmd
}
