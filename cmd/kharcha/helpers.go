package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/kharcha/internal/config"
	"github.com/Veraticus/kharcha/internal/ledger"

	"github.com/spf13/viper"
)

// initLedger builds the ledger from the configured file paths and loads
// persisted state into it.
func initLedger() (*ledger.Ledger, error) {
	expensesPath := viper.GetString("ledger.expenses_path")
	if expensesPath == "" {
		expensesPath = config.DefaultExpensesPath()
	}
	budgetsPath := viper.GetString("ledger.budgets_path")
	if budgetsPath == "" {
		budgetsPath = config.DefaultBudgetsPath()
	}

	led, err := ledger.New(config.ExpandPath(expensesPath), config.ExpandPath(budgetsPath))
	if err != nil {
		return nil, err
	}

	expCount, budCount, err := led.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	slog.Debug("Loaded ledger", "expenses", expCount, "budgets", budCount)

	return led, nil
}

// currencySymbol returns the configured display currency symbol.
func currencySymbol() string {
	return viper.GetString("currency.symbol")
}

// validateMonthKey checks the YYYY-MM shape: a 4-digit year and a
// 2-digit month, both numeric. Calendar correctness beyond that is not
// enforced.
func validateMonthKey(monthKey string) error {
	year, month, ok := strings.Cut(monthKey, "-")
	if !ok || len(year) != 4 || len(month) != 2 {
		return fmt.Errorf("invalid month %q: use YYYY-MM (e.g., 2025-01)", monthKey)
	}
	if _, err := strconv.Atoi(year); err != nil {
		return fmt.Errorf("invalid month %q: use YYYY-MM (e.g., 2025-01)", monthKey)
	}
	if _, err := strconv.Atoi(month); err != nil {
		return fmt.Errorf("invalid month %q: use YYYY-MM (e.g., 2025-01)", monthKey)
	}
	return nil
}
