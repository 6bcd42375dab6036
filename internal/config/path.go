// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultExpensesPath is where the expense log lives unless configured
// otherwise.
func DefaultExpensesPath() string {
	return filepath.Join(dataDir(), "expenses.csv")
}

// DefaultBudgetsPath is where the budget file lives unless configured
// otherwise.
func DefaultBudgetsPath() string {
	return filepath.Join(dataDir(), "budgets.json")
}

func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "kharcha")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kharcha-data"
	}
	return filepath.Join(home, ".local", "share", "kharcha")
}
