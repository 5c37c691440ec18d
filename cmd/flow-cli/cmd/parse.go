package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flow/internal/application/commands"
	"flow/internal/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse [name]",
	Short: "Check a definition and summarize it",
	Long: `Parse a definition and report its size.

Examples:
  flow-cli parse not-gate
  flow-cli parse -f gates/and.bdd
  cat adder.bdd | flow-cli parse -f -`,
	Args: diagramArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		text, _, err := readDefinition(cmd, args)
		if err != nil {
			return err
		}

		result, err := commands.NewParseCommand(text).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [name] <hex-assignment>",
	Short: "Evaluate a diagram under one assignment",
	Long: `Evaluate a diagram under a hex-encoded assignment.

Variable v takes bit v of the number, counted from the least
significant end, so "2" sets variable 1 and clears variable 0.

Examples:
  flow-cli eval and-gate 03
  flow-cli eval -f not.bdd 0x1`,
	Args: diagramArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		diagram, rest, err := loadDiagram(ctx, cmd, args)
		if err != nil {
			return err
		}

		result, err := commands.NewEvaluateCommand(diagram, rest[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %t\n", domain.DisplayHex(result.Assignment), result.Value)
		return nil
	},
}

func init() {
	addFileFlag(parseCmd)
	addFileFlag(evalCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(evalCmd)
}
