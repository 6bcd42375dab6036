package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/ledger"
	"github.com/Veraticus/kharcha/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly budgets",
		Long:  `Set monthly spending budgets and check actual spending against them.`,
		Example: `  # Budget 2000 for January 2025
  kharcha budget set 2025-01 2000

  # How is the current month going?
  kharcha budget status

  # All budgets at a glance
  kharcha budget list`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(budgetStatusCmd())
	cmd.AddCommand(listBudgetsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <month> <amount>",
		Short: "Set a month's budget",
		Long:  `Set or overwrite the spending budget for a month (YYYY-MM).`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			monthKey := args[0]
			if err := validateMonthKey(monthKey); err != nil {
				return err
			}

			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: numbers only (e.g., 2000.00)", args[1])
			}

			led, err := initLedger()
			if err != nil {
				return err
			}

			if err := led.SetBudget(monthKey, amount); err != nil {
				return err
			}
			if err := led.Save(); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s",
				monthKey, cli.FormatMoney(currencySymbol(), amount))))
			return nil
		},
	}
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [month]",
		Short: "Show spending against a month's budget",
		Long:  `Compare a month's total spending to its budget. Defaults to the current month.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			monthKey := model.MonthKey(time.Now())
			if len(args) == 1 {
				monthKey = args[0]
			}
			if err := validateMonthKey(monthKey); err != nil {
				return err
			}

			led, err := initLedger()
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderBox(fmt.Sprintf("Budget for %s", monthKey), renderBudgetStatus(led.BudgetStatus(monthKey))))
			return nil
		},
	}
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all monthly budgets",
		RunE: func(_ *cobra.Command, _ []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			budgets := led.Budgets()
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'kharcha budget set' to create one."))
				return nil
			}

			months := make([]string, 0, len(budgets))
			for month := range budgets {
				months = append(months, month)
			}
			sort.Strings(months)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Month"),
				headerStyle.Render("Budget"),
				headerStyle.Render("Spent"),
				headerStyle.Render("Remaining"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 7),
				strings.Repeat("-", 13),
				strings.Repeat("-", 13),
				strings.Repeat("-", 13))

			for _, month := range months {
				status := led.BudgetStatus(month)
				remaining := cli.FormatMoney(currencySymbol(), *status.Remaining)
				if status.State == model.BudgetStateExceeded {
					remaining = cli.ErrorStyle.Render(remaining)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					month,
					cli.FormatMoney(currencySymbol(), *status.Budget),
					cli.FormatMoney(currencySymbol(), status.Total),
					remaining)
			}

			return nil
		},
	}
}

// renderBudgetStatus formats a budget status for boxed display.
func renderBudgetStatus(status model.BudgetStatus) string {
	symbol := currencySymbol()

	if status.State == model.BudgetStateNone {
		return fmt.Sprintf("No budget set for %s.\nTotal spent so far: %s",
			status.Month, cli.FormatMoney(symbol, status.Total))
	}

	var verdict string
	if status.State == model.BudgetStateExceeded {
		verdict = cli.FormatError(fmt.Sprintf("Exceeded by %s", cli.FormatMoney(symbol, status.Remaining.Neg())))
	} else {
		verdict = cli.FormatSuccess(fmt.Sprintf("Within budget, %s remaining", cli.FormatMoney(symbol, *status.Remaining)))
	}

	return fmt.Sprintf("Budget:    %s\nSpent:     %s\nRemaining: %s\n\n%s",
		cli.FormatMoney(symbol, *status.Budget),
		cli.FormatMoney(symbol, status.Total),
		cli.FormatMoney(symbol, *status.Remaining),
		verdict)
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show category suggestions",
		Long:  `Print the advisory category list. Any free-text category is accepted when adding expenses.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range ledger.DefaultCategories {
				fmt.Println(name)
			}
			return nil
		},
	}
}
