package ledger

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/kharcha/internal/model"

	"github.com/shopspring/decimal"
)

// expenseColumns is the fixed column order of the expense log.
var expenseColumns = []string{"date", "category", "amount", "description"}

// Load reads both backing files into memory and returns the number of
// expenses and budgets loaded. A missing file simply loads nothing.
// Expense rows that fail validation are skipped without failing the
// load; a budget file that cannot be parsed at all resets the budget
// map to empty. Load appends, so call it at most once per Ledger.
func (l *Ledger) Load() (int, int, error) {
	expCount, err := l.loadExpenses()
	if err != nil {
		return 0, 0, err
	}
	return expCount, l.loadBudgets(), nil
}

// Save rewrites both backing files wholesale from the in-memory state.
func (l *Ledger) Save() error {
	if err := l.saveExpenses(); err != nil {
		return err
	}
	return l.saveBudgets()
}

func (l *Ledger) loadExpenses() (int, error) {
	f, err := os.Open(l.expensesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open expense log: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close expense log", "path", l.expensesPath, "error", closeErr)
		}
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read expense log header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	count := 0
	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Structurally broken row; same lenient recovery as a
			// row that fails validation.
			skipped++
			continue
		}

		record := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(row) {
				record[name] = row[idx]
			}
		}

		exp, err := model.ParseExpense(record)
		if err != nil {
			skipped++
			continue
		}
		l.expenses = append(l.expenses, exp)
		count++
	}

	if skipped > 0 {
		slog.Debug("Skipped invalid expense rows", "path", l.expensesPath, "skipped", skipped)
	}
	return count, nil
}

func (l *Ledger) loadBudgets() int {
	data, err := os.ReadFile(l.budgetsPath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read budget file, starting empty", "path", l.budgetsPath, "error", err)
		}
		return 0
	}

	budgets, err := parseBudgets(data)
	if err != nil {
		// All-or-nothing recovery: a corrupt budget file is treated as
		// absent rather than failing the load.
		slog.Warn("Budget file corrupted, resetting to empty", "path", l.budgetsPath, "error", err)
		l.budgets = make(map[string]decimal.Decimal)
		return 0
	}

	l.budgets = budgets
	return len(budgets)
}

// parseBudgets decodes the budget file: a flat JSON object mapping month
// keys to numeric or numeric-string amounts. Any malformed key or value
// fails the whole document.
func parseBudgets(data []byte) (map[string]decimal.Decimal, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid budget document: %w", err)
	}

	budgets := make(map[string]decimal.Decimal, len(raw))
	for month, value := range raw {
		var text string
		switch v := value.(type) {
		case json.Number:
			text = v.String()
		case string:
			text = v
		default:
			return nil, fmt.Errorf("budget for %s is not numeric", month)
		}

		amount, err := decimal.NewFromString(text)
		if err != nil {
			return nil, fmt.Errorf("budget for %s is not numeric: %w", month, err)
		}
		budgets[month] = amount
	}
	return budgets, nil
}

func (l *Ledger) saveExpenses() error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(expenseColumns); err != nil {
		return fmt.Errorf("failed to write expense log header: %w", err)
	}
	for _, exp := range l.expenses {
		record := exp.Record()
		row := make([]string, len(expenseColumns))
		for i, name := range expenseColumns {
			row[i] = record[name]
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write expense row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode expense log: %w", err)
	}

	if err := os.WriteFile(l.expensesPath, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write expense log: %w", err)
	}
	return nil
}

func (l *Ledger) saveBudgets() error {
	out := make(map[string]string, len(l.budgets))
	for month, amount := range l.budgets {
		out[month] = model.FormatAmount(amount)
	}

	// MarshalIndent sorts map keys, which keeps the on-disk ordering
	// stable across saves.
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}

	if err := os.WriteFile(l.budgetsPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write budget file: %w", err)
	}
	return nil
}
