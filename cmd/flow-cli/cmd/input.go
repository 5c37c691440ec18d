package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"flow/internal/application"
	"flow/internal/application/commands"
	"flow/internal/domain"
)

// definitionFile is shared by every command that registers --file
var definitionFile string

func addFileFlag(c *cobra.Command) {
	c.Flags().StringVarP(&definitionFile, "file", "f", "", `read the definition from a file ("-" for stdin)`)
}

// diagramArgs validates the positional arguments of a command taking one
// diagram plus extra further arguments. Without --file the diagram name
// comes first.
func diagramArgs(extra int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		want := extra + 1
		if definitionFile != "" {
			want = extra
		}
		if len(args) != want {
			return fmt.Errorf("accepts %d arg(s), received %d", want, len(args))
		}
		return nil
	}
}

// readDefinition returns the raw definition text and the remaining args
func readDefinition(cmd *cobra.Command, args []string) (string, []string, error) {
	if definitionFile == "" {
		if err := application.ValidateDiagramName("diagramName", args[0]); err != nil {
			return "", nil, err
		}
		text, err := GetRepo().Load(args[0])
		if err != nil {
			return "", nil, err
		}
		return text, args[1:], nil
	}

	text, err := readInput(cmd, definitionFile)
	return text, args, err
}

// loadDiagram parses the diagram named by args or --file
func loadDiagram(ctx context.Context, cmd *cobra.Command, args []string) (*domain.Bdd, []string, error) {
	if definitionFile == "" {
		result, err := commands.NewLoadDiagramCommand(GetRepo(), args[0]).Execute(ctx)
		if err != nil {
			return nil, nil, err
		}
		return result.Diagram, args[1:], nil
	}

	text, err := readInput(cmd, definitionFile)
	if err != nil {
		return nil, nil, err
	}
	result, err := commands.NewParseCommand(text).Execute(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", definitionFile, err)
	}
	return result.Diagram, args, nil
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := afero.ReadFile(inputFs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
