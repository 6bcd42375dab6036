package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/ledger"
	"github.com/Veraticus/kharcha/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const menuText = `
What would you like to do?
  1) Add expense
  2) View expenses
  3) Track budget (set/view)
  4) Save
  5) Exit`

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		Long: `Run the interactive menu loop: add expenses, view them, track budgets,
and save, all from one session. Changes are kept in memory until you save
or exit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd.Context())
		},
	}
}

func runMenu(ctx context.Context) error {
	led, err := initLedger()
	if err != nil {
		return err
	}

	p := cli.NewPrompter(nil, nil)
	out := p.Writer()

	fmt.Fprintln(out, cli.FormatTitle("Personal Expense Tracker"))

	expCount, budCount := len(led.ListExpenses("", "")), len(led.Budgets())
	fmt.Fprintln(out, cli.SubtleStyle.Render(
		fmt.Sprintf("Loaded %d previous expenses and %d budgets from disk.", expCount, budCount)))

	for {
		fmt.Fprintln(out, menuText)
		choice, err := p.Choice(ctx, cli.FormatPrompt("Choose an option (1-5)"), []string{"1", "2", "3", "4", "5"}, "")
		if err != nil {
			return menuExit(out, err)
		}

		switch choice {
		case "1":
			err = menuAddExpense(ctx, p, led)
		case "2":
			err = menuViewExpenses(ctx, p, led)
		case "3":
			err = menuTrackBudget(ctx, p, led)
		case "4":
			if err = led.Save(); err == nil {
				fmt.Fprintln(out, cli.FormatSuccess("Expenses and budgets saved."))
			}
		case "5":
			if err = led.Save(); err != nil {
				return err
			}
			fmt.Fprintln(out, cli.FormatSuccess("Expenses and budgets saved."))
			fmt.Fprintln(out, "Bye!")
			return nil
		}
		if err != nil {
			return menuExit(out, err)
		}
	}
}

// menuExit turns end-of-input and interrupts into a clean exit; anything
// else propagates.
func menuExit(out io.Writer, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, cli.ErrInputCancelled) {
		fmt.Fprintln(out, "\nBye!")
		return nil
	}
	return err
}

func menuAddExpense(ctx context.Context, p *cli.Prompter, led *ledger.Ledger) error {
	out := p.Writer()
	fmt.Fprintln(out, "\nAdd a new expense:")

	var date time.Time
	for {
		line, err := p.ReadLine(ctx, "  Date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		date, err = time.Parse(model.DateLayout, line)
		if err == nil {
			break
		}
		fmt.Fprintln(out, cli.FormatWarning("Invalid date. Use YYYY-MM-DD (e.g., 2025-01-15)."))
	}

	fmt.Fprintln(out, cli.SubtleStyle.Render("  Suggestions: "+strings.Join(led.Categories(), ", ")))
	category, err := p.ReadLine(ctx, "  Category: ")
	if err != nil {
		return err
	}
	if category == "" {
		category = "Miscellaneous"
	}

	var amount decimal.Decimal
	for {
		line, err := p.ReadLine(ctx, "  Amount (numbers only): ")
		if err != nil {
			return err
		}
		amount, err = decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(out, cli.FormatWarning("Invalid amount. Try again."))
			continue
		}
		if !amount.IsPositive() {
			fmt.Fprintln(out, cli.FormatWarning("Amount must be positive. Try again."))
			continue
		}
		break
	}

	var description string
	for {
		description, err = p.ReadLine(ctx, "  Description: ")
		if err != nil {
			return err
		}
		if description != "" {
			break
		}
		fmt.Fprintln(out, cli.FormatWarning("Description cannot be empty."))
	}

	exp, err := led.AddExpense(date, category, amount, description)
	if err != nil {
		fmt.Fprintln(out, cli.FormatError(err.Error()))
		return nil
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added: %s - %s - %s - %s",
		exp.Date.Format(model.DateLayout),
		exp.Category,
		cli.FormatMoney(currencySymbol(), exp.Amount),
		exp.Description)))
	return nil
}

func menuViewExpenses(ctx context.Context, p *cli.Prompter, led *ledger.Ledger) error {
	out := p.Writer()
	fmt.Fprintln(out, "\nView expenses:")

	mode, err := p.Choice(ctx, "  Filter by (a)ll, (m)onth, or (c)ategory? [a/m/c]: ", []string{"a", "m", "c"}, "a")
	if err != nil {
		return err
	}

	var monthKey, category string
	switch mode {
	case "m":
		monthKey, err = promptMonth(ctx, p)
		if err != nil {
			return err
		}
	case "c":
		category, err = p.ReadLine(ctx, "  Enter category: ")
		if err != nil {
			return err
		}
	}

	items := led.ListExpenses(monthKey, category)
	if len(items) == 0 {
		fmt.Fprintln(out, cli.InfoStyle.Render("  No expenses found for the selected filter."))
		return nil
	}

	fmt.Fprintln(out)
	printExpenseTable(items)

	total := decimal.Zero
	for _, exp := range items {
		total = total.Add(exp.Amount)
	}
	scope := "all"
	if monthKey != "" {
		scope = "month " + monthKey
	} else if category != "" {
		scope = fmt.Sprintf("category %q", category)
	}
	fmt.Fprintf(out, "\nTotal for %s: %s\n", scope, cli.FormatMoney(currencySymbol(), total))
	return nil
}

func menuTrackBudget(ctx context.Context, p *cli.Prompter, led *ledger.Ledger) error {
	out := p.Writer()
	fmt.Fprintln(out, "\nTrack budget:")

	monthKey, err := promptMonth(ctx, p)
	if err != nil {
		return err
	}

	action, err := p.Choice(ctx, "  (v)iew status or (s)et budget? [v/s]: ", []string{"v", "s"}, "v")
	if err != nil {
		return err
	}

	if action == "s" {
		for {
			line, err := p.ReadLine(ctx, "  Enter monthly budget amount: ")
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(line)
			if err != nil {
				fmt.Fprintln(out, cli.FormatWarning("Invalid amount. Try again."))
				continue
			}
			if err := led.SetBudget(monthKey, amount); err != nil {
				fmt.Fprintln(out, cli.FormatWarning("Budget must be positive. Try again."))
				continue
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s",
				monthKey, cli.FormatMoney(currencySymbol(), amount))))
			break
		}
	}

	fmt.Fprintln(out, cli.RenderBox(fmt.Sprintf("Budget for %s", monthKey), renderBudgetStatus(led.BudgetStatus(monthKey))))
	return nil
}

// promptMonth asks for a YYYY-MM month, defaulting to the current one.
func promptMonth(ctx context.Context, p *cli.Prompter) (string, error) {
	current := model.MonthKey(time.Now())
	for {
		line, err := p.ReadLine(ctx, fmt.Sprintf("  Enter month (YYYY-MM) [%s]: ", current))
		if err != nil {
			return "", err
		}
		if line == "" {
			return current, nil
		}
		if err := validateMonthKey(line); err != nil {
			fmt.Fprintln(p.Writer(), cli.FormatWarning("Invalid month format. Please use YYYY-MM (e.g., 2025-01)."))
			continue
		}
		return line, nil
	}
}
