package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseExpense_Validation(t *testing.T) {
	valid := map[string]string{
		"date":        "2025-01-15",
		"category":    "Food",
		"amount":      "250.00",
		"description": "Lunch",
	}

	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantErr error
	}{
		{
			name:   "valid record",
			mutate: func(_ map[string]string) {},
		},
		{
			name:    "missing date",
			mutate:  func(r map[string]string) { delete(r, "date") },
			wantErr: ErrMissingDate,
		},
		{
			name:    "blank date",
			mutate:  func(r map[string]string) { r["date"] = "   " },
			wantErr: ErrMissingDate,
		},
		{
			name:    "malformed date",
			mutate:  func(r map[string]string) { r["date"] = "15/01/2025" },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing category",
			mutate:  func(r map[string]string) { delete(r, "category") },
			wantErr: ErrMissingCategory,
		},
		{
			name:    "blank category",
			mutate:  func(r map[string]string) { r["category"] = "  " },
			wantErr: ErrMissingCategory,
		},
		{
			name:    "missing description",
			mutate:  func(r map[string]string) { delete(r, "description") },
			wantErr: ErrMissingDescription,
		},
		{
			name:    "blank description",
			mutate:  func(r map[string]string) { r["description"] = "\t" },
			wantErr: ErrMissingDescription,
		},
		{
			name:    "missing amount",
			mutate:  func(r map[string]string) { delete(r, "amount") },
			wantErr: ErrMissingAmount,
		},
		{
			name:    "non-numeric amount",
			mutate:  func(r map[string]string) { r["amount"] = "abc" },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "zero amount",
			mutate:  func(r map[string]string) { r["amount"] = "0" },
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(r map[string]string) { r["amount"] = "-12.50" },
			wantErr: ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := make(map[string]string, len(valid))
			for k, v := range valid {
				record[k] = v
			}
			tt.mutate(record)

			exp, err := ParseExpense(record)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ParseExpense() unexpected error: %v", err)
				}
				if exp.Category != "Food" || exp.Description != "Lunch" {
					t.Errorf("ParseExpense() = %+v, fields not preserved", exp)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseExpense() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseExpense_TrimsFields(t *testing.T) {
	exp, err := ParseExpense(map[string]string{
		"date":        " 2025-01-15 ",
		"category":    "  Food  ",
		"amount":      " 250.00 ",
		"description": "  Lunch with team  ",
	})
	if err != nil {
		t.Fatalf("ParseExpense() error: %v", err)
	}
	if exp.Category != "Food" {
		t.Errorf("Category = %q, want %q", exp.Category, "Food")
	}
	if exp.Description != "Lunch with team" {
		t.Errorf("Description = %q, want %q", exp.Description, "Lunch with team")
	}
	if !exp.Amount.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("Amount = %s, want 250.00", exp.Amount)
	}
}

func TestExpense_RecordRoundTrip(t *testing.T) {
	records := []map[string]string{
		{"date": "2025-01-15", "category": "Food", "amount": "250", "description": "Lunch"},
		{"date": "2025-01-15", "category": "Food", "amount": "250.00", "description": "Lunch, trailing zeros kept"},
		{"date": "2024-12-31", "category": "Travel", "amount": "1200.5", "description": "Train tickets"},
		{"date": "2025-02-01", "category": "Rent", "amount": "15000", "description": "February rent"},
	}

	for _, record := range records {
		exp, err := ParseExpense(record)
		if err != nil {
			t.Fatalf("ParseExpense(%v) error: %v", record, err)
		}

		got := exp.Record()
		for key, want := range record {
			if got[key] != want {
				t.Errorf("Record()[%q] = %q, want %q", key, got[key], want)
			}
		}

		again, err := ParseExpense(got)
		if err != nil {
			t.Fatalf("re-parse error: %v", err)
		}
		if !again.Date.Equal(exp.Date) || again.Category != exp.Category ||
			again.Description != exp.Description || !again.Amount.Equal(exp.Amount) {
			t.Errorf("round trip changed expense: %+v vs %+v", again, exp)
		}
	}
}

func TestNewExpense_ValidatesLikeParse(t *testing.T) {
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	if _, err := NewExpense(date, "  ", decimal.NewFromInt(10), "Lunch"); !errors.Is(err, ErrMissingCategory) {
		t.Errorf("blank category error = %v, want %v", err, ErrMissingCategory)
	}
	if _, err := NewExpense(date, "Food", decimal.NewFromInt(10), ""); !errors.Is(err, ErrMissingDescription) {
		t.Errorf("blank description error = %v, want %v", err, ErrMissingDescription)
	}
	if _, err := NewExpense(date, "Food", decimal.Zero, "Lunch"); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("zero amount error = %v, want %v", err, ErrNonPositiveAmount)
	}
	if _, err := NewExpense(date, "Food", decimal.NewFromInt(-5), "Lunch"); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("negative amount error = %v, want %v", err, ErrNonPositiveAmount)
	}

	exp, err := NewExpense(date, " Food ", decimal.NewFromInt(10), " Lunch ")
	if err != nil {
		t.Fatalf("NewExpense() error: %v", err)
	}
	if exp.Category != "Food" || exp.Description != "Lunch" {
		t.Errorf("fields not trimmed: %+v", exp)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"250", "250"},
		{"250.00", "250.00"},
		{"1200.5", "1200.5"},
		{"0.1", "0.1"},
		{"2.5e3", "2500"},
	}

	for _, tt := range tests {
		got := FormatAmount(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("FormatAmount(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMonthKey_ZeroPadded(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2025-01"},
		{time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), "2025-12"},
		{time.Date(999, 9, 9, 0, 0, 0, 0, time.UTC), "0999-09"},
	}

	for _, tt := range tests {
		if got := MonthKey(tt.date); got != tt.want {
			t.Errorf("MonthKey(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
