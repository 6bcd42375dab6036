// Package ledger implements the in-memory expense and budget engine and
// its persistence to the two flat files that back it.
package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/kharcha/internal/model"

	"github.com/shopspring/decimal"
)

// ErrNonPositiveBudget is returned when setting a budget that is zero or
// negative.
var ErrNonPositiveBudget = errors.New("budget must be positive")

// DefaultCategories is the advisory category suggestion list. It is
// display-only: expense categories are free text and never checked
// against it.
var DefaultCategories = []string{
	"Food", "Travel", "Groceries", "Rent", "Utilities", "Bills", "Healthcare",
	"Education", "Entertainment", "Shopping", "Personal Care", "Miscellaneous",
}

// Ledger owns the in-memory expense sequence and budget map for one
// session and is the sole mutator of their on-disk state. It is not safe
// for concurrent use; callers must serialize access themselves.
type Ledger struct {
	budgets      map[string]decimal.Decimal
	expensesPath string
	budgetsPath  string
	expenses     []model.Expense
}

// New creates a ledger backed by the given expense log and budget file
// paths, creating their parent directories if needed. No file I/O beyond
// directory creation happens until Load or Save.
func New(expensesPath, budgetsPath string) (*Ledger, error) {
	if strings.TrimSpace(expensesPath) == "" {
		return nil, fmt.Errorf("expenses path cannot be empty")
	}
	if strings.TrimSpace(budgetsPath) == "" {
		return nil, fmt.Errorf("budgets path cannot be empty")
	}

	for _, p := range []string{expensesPath, budgetsPath} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
			}
		}
	}

	return &Ledger{
		expensesPath: expensesPath,
		budgetsPath:  budgetsPath,
		budgets:      make(map[string]decimal.Decimal),
	}, nil
}

// AddExpense validates and appends a new expense in memory. The change
// is not persisted until Save is called.
func (l *Ledger) AddExpense(date time.Time, category string, amount decimal.Decimal, description string) (model.Expense, error) {
	exp, err := model.NewExpense(date, category, amount, description)
	if err != nil {
		return model.Expense{}, err
	}
	l.expenses = append(l.expenses, exp)
	return exp, nil
}

// ListExpenses returns the expenses matching all supplied filters, in
// insertion order. An empty monthKey or category means that filter is
// absent; category matching is case-insensitive.
func (l *Ledger) ListExpenses(monthKey, category string) []model.Expense {
	matched := make([]model.Expense, 0, len(l.expenses))
	for _, exp := range l.expenses {
		if monthKey != "" && exp.MonthKey() != monthKey {
			continue
		}
		if category != "" && !strings.EqualFold(exp.Category, category) {
			continue
		}
		matched = append(matched, exp)
	}
	return matched
}

// TotalExpenses sums the amounts of all expenses in the given month, or
// of every expense when monthKey is empty. The sum is exact decimal
// arithmetic and zero for an empty result set.
func (l *Ledger) TotalExpenses(monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range l.ListExpenses(monthKey, "") {
		total = total.Add(exp.Amount)
	}
	return total
}

// SetBudget sets or overwrites the budget for a month.
func (l *Ledger) SetBudget(monthKey string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrNonPositiveBudget, amount)
	}
	l.budgets[monthKey] = amount
	return nil
}

// GetBudget returns the budget for a month and whether one is set.
func (l *Ledger) GetBudget(monthKey string) (decimal.Decimal, bool) {
	amount, ok := l.budgets[monthKey]
	return amount, ok
}

// Budgets returns a copy of the full month-key to budget map.
func (l *Ledger) Budgets() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(l.budgets))
	for k, v := range l.budgets {
		out[k] = v
	}
	return out
}

// BudgetStatus computes the month's spending against its budget. Total
// is always populated; Budget and Remaining stay nil when no budget is
// set. Spending exactly equal to the budget counts as within.
func (l *Ledger) BudgetStatus(monthKey string) model.BudgetStatus {
	total := l.TotalExpenses(monthKey)

	budget, ok := l.GetBudget(monthKey)
	if !ok {
		return model.BudgetStatus{
			Month: monthKey,
			Total: total,
			State: model.BudgetStateNone,
		}
	}

	remaining := budget.Sub(total)
	state := model.BudgetStateWithin
	if remaining.IsNegative() {
		state = model.BudgetStateExceeded
	}

	return model.BudgetStatus{
		Month:     monthKey,
		Budget:    &budget,
		Remaining: &remaining,
		Total:     total,
		State:     state,
	}
}

// Categories returns a copy of the advisory category suggestion list.
func (l *Ledger) Categories() []string {
	out := make([]string, len(DefaultCategories))
	copy(out, DefaultCategories)
	return out
}
