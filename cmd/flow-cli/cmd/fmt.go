package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flow/internal/application/commands"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [name]",
	Short: "Rewrite a definition in canonical form",
	Long: `Print a definition with single spaces, no blank lines and node
lines ordered by id. With --write the stored definition is replaced.

Examples:
  flow-cli fmt adder
  flow-cli fmt --write adder
  flow-cli fmt -f messy.bdd`,
	Args: diagramArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if fmtWrite && definitionFile != "" {
			return fmt.Errorf("--write only applies to stored definitions")
		}

		text, _, err := readDefinition(cmd, args)
		if err != nil {
			return err
		}

		canonical, err := commands.NewFormatCommand(text).Execute(ctx)
		if err != nil {
			return err
		}

		if fmtWrite {
			result, err := commands.NewSaveDiagramCommand(GetRepo(), args[0], canonical).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), canonical)
		return nil
	},
}

func init() {
	addFileFlag(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtWrite, "write", false, "replace the stored definition")
	rootCmd.AddCommand(fmtCmd)
}
