package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func expensesCmd() *cobra.Command {
	var (
		monthKey string
		category string
	)

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "List recorded expenses",
		Long:  `Display expenses in a table, optionally filtered by month and/or category.`,
		Example: `  # Everything
  kharcha expenses

  # One month
  kharcha expenses --month 2025-01

  # Food expenses in January
  kharcha expenses --month 2025-01 --category Food`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if monthKey != "" {
				if err := validateMonthKey(monthKey); err != nil {
					return err
				}
			}

			led, err := initLedger()
			if err != nil {
				return err
			}

			items := led.ListExpenses(monthKey, category)
			if len(items) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses found for the selected filter."))
				return nil
			}

			printExpenseTable(items)

			total := decimal.Zero
			for _, exp := range items {
				total = total.Add(exp.Amount)
			}

			scope := "all"
			switch {
			case monthKey != "" && category != "":
				scope = fmt.Sprintf("month %s, category %q", monthKey, category)
			case monthKey != "":
				scope = fmt.Sprintf("month %s", monthKey)
			case category != "":
				scope = fmt.Sprintf("category %q", category)
			}
			fmt.Printf("\nTotal for %s: %s\n", scope, cli.FormatMoney(currencySymbol(), total))

			return nil
		},
	}

	cmd.Flags().StringVarP(&monthKey, "month", "M", "", "Filter by month (YYYY-MM)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (case-insensitive)")

	return cmd
}

func totalCmd() *cobra.Command {
	var monthKey string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Show total spending",
		Long:  `Print the exact total of all expenses, or of one month.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if monthKey != "" {
				if err := validateMonthKey(monthKey); err != nil {
					return err
				}
			}

			led, err := initLedger()
			if err != nil {
				return err
			}

			scope := "all expenses"
			if monthKey != "" {
				scope = "month " + monthKey
			}
			fmt.Printf("Total for %s: %s\n", scope, cli.FormatMoney(currencySymbol(), led.TotalExpenses(monthKey)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthKey, "month", "M", "", "Limit to a month (YYYY-MM)")

	return cmd
}

// printExpenseTable renders expenses as an aligned table with long
// descriptions truncated for readability.
func printExpenseTable(items []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("#"),
		headerStyle.Render("Date"),
		headerStyle.Render("Category"),
		headerStyle.Render("Amount"),
		headerStyle.Render("Description"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 3),
		strings.Repeat("-", 10),
		strings.Repeat("-", 14),
		strings.Repeat("-", 13),
		strings.Repeat("-", 30))

	for i, exp := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			exp.Date.Format(model.DateLayout),
			exp.Category,
			cli.FormatMoney(currencySymbol(), exp.Amount),
			cli.TruncateDescription(exp.Description))
	}
}
