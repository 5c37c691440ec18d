package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"flow/internal/adapters/editor"
	"flow/internal/adapters/filesystem"
	"flow/internal/adapters/robdd"
	"flow/internal/adapters/sat"
	"flow/internal/adapters/sqlite"
	"flow/internal/adapters/tui"
	"flow/internal/adapters/tui/views"
	"flow/internal/config"
	"flow/internal/logging"
)

func main() {
	cfg := config.Load()
	workspace := flag.String("workspace", cfg.Workspace, "directory holding .bdd definitions")
	flag.Parse()

	// the alternate screen owns the terminal, so only errors are logged
	logger := logging.New("flow", "error")

	svc := &views.Services{
		Repo:    filesystem.NewRepository(*workspace),
		Solver:  sat.NewSolver(logger),
		Counter: robdd.NewEngine(logger),
		Logger:  logger,
		MaxVars: cfg.MaxVars,
		Workers: cfg.Workers,
	}

	if cfg.CachePath != "" {
		if cache, err := sqlite.OpenCache(cfg.CachePath); err == nil {
			defer cache.Close()
			svc.Cache = cache
		}
	}

	app := tui.NewApp(svc, editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
