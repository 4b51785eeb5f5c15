package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tulikamejora/homework-help/internal/cli/formatter"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "catalog [subjects|lengths|levels]",
		Short:     "List the available subjects, lengths and education levels",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"subjects", "lengths", "levels"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, strings.Join([]string{
					formatter.FormatSubjects(),
					formatter.FormatLengths(),
					formatter.FormatEducationLevels(),
				}, "\n"))
				return nil
			}
			switch args[0] {
			case "subjects":
				fmt.Fprint(out, formatter.FormatSubjects())
			case "lengths":
				fmt.Fprint(out, formatter.FormatLengths())
			case "levels":
				fmt.Fprint(out, formatter.FormatEducationLevels())
			}
			return nil
		},
	}
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Show how to use the homework generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGuide())
			return nil
		},
	}
}
