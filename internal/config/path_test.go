package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"plain path unchanged", "/var/data/expenses.csv", "/var/data/expenses.csv"},
		{"tilde prefix", "~/expenses.csv", filepath.Join(home, "expenses.csv")},
		{"bare tilde", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandPath_EnvVars(t *testing.T) {
	t.Setenv("KHARCHA_TEST_DIR", "/tmp/kharcha-test")

	got := ExpandPath("$KHARCHA_TEST_DIR/expenses.csv")
	if got != "/tmp/kharcha-test/expenses.csv" {
		t.Errorf("ExpandPath() = %q, want %q", got, "/tmp/kharcha-test/expenses.csv")
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := DefaultExpensesPath(); got != "/tmp/xdg-data/kharcha/expenses.csv" {
		t.Errorf("DefaultExpensesPath() = %q", got)
	}
	if got := DefaultBudgetsPath(); got != "/tmp/xdg-data/kharcha/budgets.json" {
		t.Errorf("DefaultBudgetsPath() = %q", got)
	}
}

func TestDefaultPaths_FallBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	got := DefaultExpensesPath()
	if !strings.HasSuffix(got, filepath.Join(".local", "share", "kharcha", "expenses.csv")) {
		t.Errorf("DefaultExpensesPath() = %q, want .local/share/kharcha suffix", got)
	}
}
