package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	DefaultWorkspace = "."
	DefaultMaxVars   = 20
	DefaultLogLevel  = "warn"

	// CacheOff disables the truth-table cache when set as FLOW_CACHE
	CacheOff = "off"
)

// Config holds the settings shared by every binary
type Config struct {
	Workspace string
	MaxVars   int
	Workers   int
	CachePath string // empty when the cache is disabled
	LogLevel  string
}

// Load reads the configuration from FLOW_* environment variables
func Load() Config {
	return Config{
		Workspace: Workspace(),
		MaxVars:   MaxVars(),
		Workers:   Workers(),
		CachePath: CachePath(),
		LogLevel:  LogLevel(),
	}
}

// Workspace returns the definition directory from FLOW_WORKSPACE,
// falling back to DefaultWorkspace.
func Workspace() string {
	if env := os.Getenv("FLOW_WORKSPACE"); env != "" {
		return env
	}
	return DefaultWorkspace
}

// MaxVars returns the widest truth table the tools will enumerate.
// Values that do not parse as a positive integer fall back to DefaultMaxVars.
func MaxVars() int {
	return positiveInt("FLOW_MAX_VARS", DefaultMaxVars)
}

// Workers returns the number of goroutines used for truth tables
func Workers() int {
	return positiveInt("FLOW_WORKERS", runtime.NumCPU())
}

// CachePath returns the SQLite cache location, or "" when FLOW_CACHE=off
func CachePath() string {
	env := os.Getenv("FLOW_CACHE")
	if strings.EqualFold(env, CacheOff) {
		return ""
	}
	if env != "" {
		return env
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "flow", "tables.db")
}

// LogLevel returns FLOW_LOG_LEVEL or DefaultLogLevel
func LogLevel() string {
	if env := os.Getenv("FLOW_LOG_LEVEL"); env != "" {
		return env
	}
	return DefaultLogLevel
}

func positiveInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
