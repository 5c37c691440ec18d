package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"flow/internal/adapters/filesystem"
	mcpadapter "flow/internal/adapters/mcp"
	"flow/internal/adapters/robdd"
	"flow/internal/adapters/sat"
	"flow/internal/adapters/sqlite"
	"flow/internal/config"
	"flow/internal/logging"
)

func main() {
	cfg := config.Load()
	workspaceFlag := flag.String("workspace", cfg.Workspace, "directory holding .bdd definitions")
	readOnly := flag.Bool("read-only", false, "do not register the save and delete tools")
	flag.Parse()

	// stdout carries the protocol; the logger writes to stderr
	logger := logging.New("flow-mcp", cfg.LogLevel)

	svc := &mcpadapter.Services{
		Repo:    filesystem.NewRepository(*workspaceFlag),
		Solver:  sat.NewSolver(logger),
		Counter: robdd.NewEngine(logger),
		Logger:  logger,
		MaxVars: cfg.MaxVars,
		Workers: cfg.Workers,
	}

	if cfg.CachePath != "" {
		cache, err := sqlite.OpenCache(cfg.CachePath)
		if err != nil {
			logger.Warn("truth table cache unavailable", "path", cfg.CachePath, "error", err)
		} else {
			defer cache.Close()
			svc.Cache = cache
		}
	}

	mcpServer := server.NewMCPServer(
		"flow-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc)
	if !*readOnly {
		mcpadapter.RegisterWriteTools(mcpServer, svc)
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("flow-mcp: %v", err)
	}
}
