package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flow/internal/application/commands"
)

var satCmd = &cobra.Command{
	Use:   "sat [name]",
	Short: "Find an assignment that makes a diagram true",
	Long: `Search for a satisfying assignment with a SAT solver and print it
in the hex form accepted by "flow-cli eval".

Examples:
  flow-cli sat and-gate`,
	Args: diagramArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		diagram, _, err := loadDiagram(ctx, cmd, args)
		if err != nil {
			return err
		}

		result, err := commands.NewSatisfyCommand(newSolver(), diagram, logger).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var cnfCmd = &cobra.Command{
	Use:   "cnf [name]",
	Short: "Write the diagram as a DIMACS CNF problem",
	Long: `Write the CNF encoding used by "flow-cli sat" in DIMACS format,
for use with an external solver.

Examples:
  flow-cli cnf adder > adder.cnf`,
	Args: diagramArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		diagram, _, err := loadDiagram(ctx, cmd, args)
		if err != nil {
			return err
		}
		return commands.NewCNFCommand(newSolver(), diagram, cmd.OutOrStdout()).Execute(ctx)
	},
}

func init() {
	addFileFlag(satCmd)
	addFileFlag(cnfCmd)
	rootCmd.AddCommand(satCmd)
	rootCmd.AddCommand(cnfCmd)
}
