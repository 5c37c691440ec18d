package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"flow/internal/application/commands"
)

// RegisterWriteTools adds the tools that modify the workspace.
func RegisterWriteTools(s *server.MCPServer, svc *Services) {
	s.AddTool(saveTool(), saveHandler(svc))
	s.AddTool(deleteTool(), deleteHandler(svc))
}

// --- save ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save",
		mcp.WithDescription("Validate a definition and store it in the workspace in canonical form. Overwrites an existing definition of the same name."),
		mcp.WithString("name",
			mcp.Description("Definition name (letters, digits, '.', '_', '-')"),
			mcp.Required(),
		),
		mcp.WithString("definition",
			mcp.Description("Definition text"),
			mcp.Required(),
		),
	)
}

func saveHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		definition := req.GetString("definition", "")

		result, err := commands.NewSaveDiagramCommand(svc.Repo, name, definition).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a stored definition and its cached truth table."),
		mcp.WithString("name",
			mcp.Description("Name of the definition to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")

		cmd := commands.NewDeleteDiagramCommand(svc.Repo, svc.Cache, name)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
