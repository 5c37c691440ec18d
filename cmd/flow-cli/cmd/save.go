package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flow/internal/adapters/editor"
	"flow/internal/application"
	"flow/internal/application/commands"
)

var saveFrom string

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Store a definition in the workspace",
	Long: `Parse a definition and store it in canonical form as <name>.bdd.
The definition is read from --from, or stdin when omitted.

Examples:
  flow-cli save and-gate --from ~/Downloads/and.txt
  printf 'vars 0\nnodes 1\n0 -1 -1 1\n' | flow-cli save always`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		text, err := readInput(cmd, saveFrom)
		if err != nil {
			return err
		}

		result, err := commands.NewSaveDiagramCommand(GetRepo(), args[0], text).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a definition",
	Long: `Delete a definition from the workspace and drop its cached
truth table.

Warning: This operation cannot be undone.

Examples:
  flow-cli delete and-gate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewDeleteDiagramCommand(GetRepo(), GetCache(), args[0]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Open a definition in $EDITOR and check it afterwards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := application.ValidateDiagramName("diagramName", args[0]); err != nil {
			return err
		}
		path, err := GetRepo().Path(args[0])
		if err != nil {
			return err
		}
		if err := editor.NewOpener().OpenFile(path); err != nil {
			return err
		}

		text, err := GetRepo().Load(args[0])
		if err != nil {
			return err
		}
		result, err := commands.NewParseCommand(text).Execute(ctx)
		if err != nil {
			return fmt.Errorf("%s no longer parses: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveFrom, "from", "-", `file to read the definition from ("-" for stdin)`)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)
}
