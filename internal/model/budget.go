package model

import "github.com/shopspring/decimal"

// BudgetState indicates how a month's spending compares to its budget.
type BudgetState string

const (
	// BudgetStateNone means no budget has been set for the month.
	BudgetStateNone BudgetState = "no_budget"
	// BudgetStateWithin means spending is at or under the budget.
	BudgetStateWithin BudgetState = "within_budget"
	// BudgetStateExceeded means spending has gone over the budget.
	BudgetStateExceeded BudgetState = "exceeded_budget"
)

// BudgetStatus summarizes a month's spending against its budget.
// Budget and Remaining are nil when no budget is set for the month;
// Total is always populated.
type BudgetStatus struct {
	Month     string
	Budget    *decimal.Decimal
	Remaining *decimal.Decimal
	Total     decimal.Decimal
	State     BudgetState
}
