package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		dateStr     string
		category    string
		amountStr   string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long:  `Add an expense to the ledger and save it immediately.`,
		Example: `  # Record lunch for today
  kharcha add --amount 250 --category Food --description "Lunch"

  # Record a back-dated expense
  kharcha add --date 2025-01-15 --amount 1200.50 --category Travel --description "Train tickets"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			date, err := time.Parse(model.DateLayout, dateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q: use YYYY-MM-DD (e.g., 2025-01-15)", dateStr)
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: numbers only (e.g., 250.00)", amountStr)
			}

			led, err := initLedger()
			if err != nil {
				return err
			}

			exp, err := led.AddExpense(date, category, amount, description)
			if err != nil {
				return err
			}

			if err := led.Save(); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added: %s - %s - %s - %s",
				exp.Date.Format(model.DateLayout),
				exp.Category,
				cli.FormatMoney(currencySymbol(), exp.Amount),
				exp.Description)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", time.Now().Format(model.DateLayout), "Expense date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&category, "category", "c", "Miscellaneous", "Expense category")
	cmd.Flags().StringVarP(&amountStr, "amount", "a", "", "Expense amount (required)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "What the money went to (required)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
