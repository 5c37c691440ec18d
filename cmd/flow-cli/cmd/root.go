package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"flow/internal/adapters/filesystem"
	"flow/internal/adapters/robdd"
	"flow/internal/adapters/sat"
	"flow/internal/adapters/sqlite"
	"flow/internal/config"
	"flow/internal/logging"
	"flow/internal/ports"
)

var (
	workspace string
	verbose   bool
	noCache   bool

	cfg    config.Config
	logger hclog.Logger
	repo   ports.DiagramRepository
	cache  *sqlite.Cache

	// files read with --file and save; swapped for a MemMapFs in tests
	inputFs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "flow-cli",
	Short: "Parse, evaluate and analyze binary decision diagrams",
	Long: `flow-cli works with binary decision diagrams stored as .bdd
definitions in a workspace directory.

A definition looks like:

  vars 1
  nodes 3
  0 2 1 0
  1 -1 -1 1
  2 -1 -1 0

Each node line is "<id> <high> <low> <var>"; terminals use -1 -1 and
carry their value (0 or 1) in the last field. Commands take a definition
name from the workspace, or --file to read one from disk ("-" for stdin).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg = config.Load()
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = logging.New("flow-cli", level)
		repo = filesystem.NewRepository(workspace)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cache == nil {
			return nil
		}
		err := cache.Close()
		cache = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "d", config.Workspace(), "directory holding .bdd definitions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "do not read or write the truth table cache")
}

// GetRepo returns the initialized repository
func GetRepo() ports.DiagramRepository {
	return repo
}

// GetCache opens the table cache on first use. It returns nil when
// caching is disabled or the database cannot be opened.
func GetCache() ports.TableCache {
	if cache != nil {
		return cache
	}
	if noCache || cfg.CachePath == "" {
		return nil
	}

	c, err := sqlite.OpenCache(cfg.CachePath)
	if err != nil {
		logger.Warn("truth table cache unavailable", "path", cfg.CachePath, "error", err)
		return nil
	}
	cache = c
	return cache
}

func newSolver() ports.Satisfier {
	return sat.NewSolver(logger)
}

func newCounter() ports.Counter {
	return robdd.NewEngine(logger)
}
