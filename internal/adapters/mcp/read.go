package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/samber/lo"

	"flow/internal/application/commands"
	"flow/internal/domain"
	"flow/internal/ports"
)

// Services bundles what the tool handlers need
type Services struct {
	Repo    ports.DiagramRepository
	Cache   ports.TableCache // may be nil
	Solver  ports.Satisfier
	Counter ports.Counter
	Logger  hclog.Logger
	MaxVars int
	Workers int
}

// RegisterReadTools adds all read-only diagram tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, svc *Services) {
	s.AddTool(listTool(), listHandler(svc))
	s.AddTool(parseTool(), parseHandler(svc))
	s.AddTool(evaluateTool(), evaluateHandler(svc))
	s.AddTool(truthTableTool(), truthTableHandler(svc))
	s.AddTool(satisfyTool(), satisfyHandler(svc))
	s.AddTool(countTool(), countHandler(svc))
	s.AddTool(equivalentTool(), equivalentHandler(svc))
	s.AddTool(cnfTool(), cnfHandler(svc))
}

// Diagram-taking tools accept either a stored name or an inline definition
func withDiagram() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("name",
			mcp.Description("Name of a stored definition (file name without .bdd)"),
		),
		mcp.WithString("definition",
			mcp.Description("Inline definition text, used instead of name"),
		),
	}
}

func newDiagramTool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	all := append([]mcp.ToolOption{mcp.WithDescription(description)}, withDiagram()...)
	return mcp.NewTool(name, append(all, opts...)...)
}

func resolveDiagram(ctx context.Context, svc *Services, req mcp.CallToolRequest) (*domain.Bdd, error) {
	if def := req.GetString("definition", ""); def != "" {
		return domain.Parse(def)
	}
	name := req.GetString("name", "")
	if name == "" {
		return nil, fmt.Errorf("name or definition is required")
	}
	res, err := commands.NewLoadDiagramCommand(svc.Repo, name).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res.Diagram, nil
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the stored diagram definitions in the workspace."),
	)
}

func listHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		diagrams, err := commands.NewListDiagramsCommand(svc.Repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(diagrams, formatDiagram)
	}
}

// --- parse ---

func parseTool() mcp.Tool {
	return newDiagramTool("parse",
		"Validate a diagram definition and summarize it: variables, nodes, reachable nodes, cycles.")
}

func parseHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := resolveDiagram(ctx, svc, req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewParseCommand(b.String()).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- evaluate ---

func evaluateTool() mcp.Tool {
	return newDiagramTool("evaluate",
		"Evaluate a diagram under one assignment.",
		mcp.WithString("assignment",
			mcp.Description("Hex bit pattern; bit v (from the least significant end) is variable v, e.g. 03"),
			mcp.Required(),
		),
	)
}

func evaluateHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := resolveDiagram(ctx, svc, req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewEvaluateCommand(b, req.GetString("assignment", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s = %t", domain.DisplayHex(res.Assignment), res.Value)), nil
	}
}

// --- truth_table ---

func truthTableTool() mcp.Tool {
	return newDiagramTool("truth_table",
		"Evaluate every assignment. Each line is \"<hex index> = <result>\".",
		mcp.WithBoolean("only_true",
			mcp.Description("Only list rows that evaluate to true"),
		),
	)
}

func truthTableHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := resolveDiagram(ctx, svc, req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewTruthTableCommand(b, svc.Cache, svc.Logger, svc.MaxVars, svc.Workers).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		rows := res.Rows
		if req.GetBool("only_true", false) {
			rows = onlyTrue(rows)
		}

		var sb strings.Builder
		for _, line := range commands.FormatRows(rows) {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "# %s\n", res.Summary())
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func onlyTrue(rows []domain.Row) []domain.Row {
	return lo.Filter(rows, func(r domain.Row, _ int) bool { return r.Result })
}

// --- satisfy ---

func satisfyTool() mcp.Tool {
	return newDiagramTool("satisfy",
		"Find an assignment under which the diagram is true, without building the truth table.")
}

func satisfyHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := resolveDiagram(ctx, svc, req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewSatisfyCommand(svc.Solver, b, svc.Logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- count ---

func countTool() mcp.Tool {
	return newDiagramTool("count",
		"Count the assignments under which the diagram is true.")
}

func countHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := resolveDiagram(ctx, svc, req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewCountCommand(svc.Counter, b, svc.Logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}

// --- equivalent ---

func equivalentTool() mcp.Tool {
	return mcp.NewTool("equivalent",
		mcp.WithDescription("Check whether two stored diagrams compute the same function."),
		mcp.WithString("left",
			mcp.Description("Name of the first definition"),
			mcp.Required(),
		),
		mcp.WithString("right",
			mcp.Description("Name of the second definition"),
			mcp.Required(),
		),
	)
}

func equivalentHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		left, err := commands.NewLoadDiagramCommand(svc.Repo, req.GetString("left", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		right, err := commands.NewLoadDiagramCommand(svc.Repo, req.GetString("right", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		res, err := commands.NewEquivalenceCommand(svc.Counter, left.Diagram, right.Diagram).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s and %s are %s", left.Name, right.Name, res.Message)), nil
	}
}

// --- cnf ---

func cnfTool() mcp.Tool {
	return newDiagramTool("cnf",
		"Export the satisfiability encoding of a diagram in DIMACS CNF.")
}

func cnfHandler(svc *Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := resolveDiagram(ctx, svc, req)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		if err := commands.NewCNFCommand(svc.Solver, b, &sb).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatDiagram(d domain.DiagramInfo) string {
	return fmt.Sprintf("%s  %s", d.Name, d.Path)
}
