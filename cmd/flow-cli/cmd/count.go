package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flow/internal/application/commands"
)

var countCmd = &cobra.Command{
	Use:   "count [name]",
	Short: "Count the assignments that make a diagram true",
	Long: `Count satisfying assignments without enumerating the truth table,
so it also works for diagrams too wide for "flow-cli table".

Examples:
  flow-cli count adder`,
	Args: diagramArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		diagram, _, err := loadDiagram(ctx, cmd, args)
		if err != nil {
			return err
		}

		result, err := commands.NewCountCommand(newCounter(), diagram, logger).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var equivCmd = &cobra.Command{
	Use:   "equiv <left> <right>",
	Short: "Check whether two diagrams compute the same function",
	Long: `Compare two stored definitions over the same variables.

Examples:
  flow-cli equiv and-gate and-gate-reordered`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		left, err := commands.NewLoadDiagramCommand(GetRepo(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		right, err := commands.NewLoadDiagramCommand(GetRepo(), args[1]).Execute(ctx)
		if err != nil {
			return err
		}

		result, err := commands.NewEquivalenceCommand(newCounter(), left.Diagram, right.Diagram).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	addFileFlag(countCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(equivCmd)
}
