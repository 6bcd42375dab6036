// Package model defines the core domain types for the kharcha ledger.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical calendar-date format used everywhere an
// expense date is parsed or rendered.
const DateLayout = "2006-01-02"

// Validation errors returned when constructing an Expense.
var (
	ErrMissingDate        = errors.New("missing date")
	ErrInvalidDate        = errors.New("invalid date")
	ErrMissingCategory    = errors.New("missing category")
	ErrMissingDescription = errors.New("missing description")
	ErrMissingAmount      = errors.New("missing amount")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
)

// Expense represents a single validated spending record. Instances are
// immutable once constructed; the ledger rewrites its whole collection
// on save rather than editing records in place.
type Expense struct {
	Date        time.Time
	Category    string
	Description string
	Amount      decimal.Decimal
}

// NewExpense constructs an Expense from already-typed fields. It applies
// the same validation as ParseExpense so there is a single boundary where
// invalid records can be rejected, regardless of how they arrive.
func NewExpense(date time.Time, category string, amount decimal.Decimal, description string) (Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Expense{}, ErrMissingCategory
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return Expense{}, ErrMissingDescription
	}

	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("%w: got %s", ErrNonPositiveAmount, amount)
	}

	return Expense{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}, nil
}

// ParseExpense constructs an Expense from one external record keyed by
// field name, as read from the persisted expense log. Each field is
// validated independently and failures carry a distinct error kind.
func ParseExpense(record map[string]string) (Expense, error) {
	dateStr := strings.TrimSpace(record["date"])
	if dateStr == "" {
		return Expense{}, ErrMissingDate
	}
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return Expense{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}

	category := strings.TrimSpace(record["category"])
	if category == "" {
		return Expense{}, ErrMissingCategory
	}

	description := strings.TrimSpace(record["description"])
	if description == "" {
		return Expense{}, ErrMissingDescription
	}

	amountStr := strings.TrimSpace(record["amount"])
	if amountStr == "" {
		return Expense{}, ErrMissingAmount
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return Expense{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amountStr)
	}
	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("%w: got %s", ErrNonPositiveAmount, amount)
	}

	return Expense{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}, nil
}

// Record serializes the expense back to the field-name keyed form used
// by the persisted log. The output round-trips losslessly through
// ParseExpense.
func (e Expense) Record() map[string]string {
	return map[string]string{
		"date":        e.Date.Format(DateLayout),
		"category":    e.Category,
		"amount":      FormatAmount(e.Amount),
		"description": e.Description,
	}
}

// FormatAmount renders a monetary amount as fixed-point decimal text at
// its stored scale: no exponent notation, no grouping, and trailing
// zeros kept so parsed text survives a round trip unchanged.
func FormatAmount(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}
	return amount.String()
}

// MonthKey returns the month this expense belongs to.
func (e Expense) MonthKey() string {
	return MonthKey(e.Date)
}

// MonthKey derives the canonical zero-padded YYYY-MM key for a date.
// All month filtering and budget lookups go through this one function.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
