package domain

import (
	"fmt"
	"strings"
	"time"
)

// FinanceRecord is a single money movement. Positive amounts are income,
// negative amounts are expenses.
type FinanceRecord struct {
	ID          int     `json:"id"          yaml:"id"`
	Amount      float64 `json:"amount"      yaml:"amount"`
	Category    string  `json:"category"    yaml:"category"`
	Date        string  `json:"date"        yaml:"date"`
	Description string  `json:"description" yaml:"description"`
}

func (r FinanceRecord) RecordID() int { return r.ID }

func (r FinanceRecord) WithID(id int) FinanceRecord {
	r.ID = id
	return r
}

func (r FinanceRecord) IsIncome() bool  { return r.Amount > 0 }
func (r FinanceRecord) IsExpense() bool { return r.Amount < 0 }

func (r FinanceRecord) InCategory(category string) bool {
	return strings.EqualFold(r.Category, category)
}

// Day parses the record date.
func (r FinanceRecord) Day() (time.Time, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("record %d: %w", r.ID, err)
	}
	return d, nil
}

// ParseDate parses a DD-MM-YYYY calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateParseLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return t, nil
}
