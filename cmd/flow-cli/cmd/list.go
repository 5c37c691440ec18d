package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flow/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the definitions in the workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		diagrams, err := commands.NewListDiagramsCommand(GetRepo()).Execute(ctx)
		if err != nil {
			return err
		}

		for _, d := range diagrams {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.Name, d.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
