package cmd

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"flow/internal/application/commands"
	"flow/internal/domain"
)

var (
	tableOnlyTrue bool
	tableSummary  bool
	tableMaxVars  int
)

var tableCmd = &cobra.Command{
	Use:   "table [name]",
	Short: "Print the truth table of a diagram",
	Long: `Print one "<index> = <value>" row per assignment, with the index
in hex. Tables are cached by definition content; see "flow-cli cache".

Examples:
  flow-cli table and-gate
  flow-cli table --only-true -f adder.bdd`,
	Args: diagramArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		diagram, _, err := loadDiagram(ctx, cmd, args)
		if err != nil {
			return err
		}

		maxVars := cfg.MaxVars
		if tableMaxVars > 0 {
			maxVars = tableMaxVars
		}

		result, err := commands.NewTruthTableCommand(diagram, GetCache(), logger, maxVars, cfg.Workers).Execute(ctx)
		if err != nil {
			return err
		}

		rows := result.Rows
		if tableOnlyTrue {
			rows = lo.Filter(rows, func(r domain.Row, _ int) bool { return r.Result })
		}

		out := cmd.OutOrStdout()
		for _, line := range commands.FormatRows(rows) {
			fmt.Fprintln(out, line)
		}
		if tableSummary {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Summary())
		}
		return nil
	},
}

func init() {
	addFileFlag(tableCmd)
	tableCmd.Flags().BoolVarP(&tableOnlyTrue, "only-true", "t", false, "print only rows that evaluate to true")
	tableCmd.Flags().BoolVarP(&tableSummary, "summary", "s", false, "print a row count summary to stderr")
	tableCmd.Flags().IntVar(&tableMaxVars, "max-vars", 0, "override FLOW_MAX_VARS for this table")
	rootCmd.AddCommand(tableCmd)
}
