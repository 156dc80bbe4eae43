package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"organizer/domain"
)

type AnalyticsService struct {
	records *Manager[domain.FinanceRecord]
}

func NewAnalyticsService(records *Manager[domain.FinanceRecord]) *AnalyticsService {
	return &AnalyticsService{records: records}
}

// FinanceFilter narrows finance records. Empty fields do not filter.
// Dates are DD-MM-YYYY and both bounds are inclusive.
type FinanceFilter struct {
	Category string
	From     string
	To       string
}

// Filter applies the category, then the lower bound, then the upper bound.
// A record's date is only parsed once a date bound needs it.
func (s *AnalyticsService) Filter(ctx context.Context, f FinanceFilter) ([]domain.FinanceRecord, error) {
	var from, to time.Time
	var err error
	if f.From != "" {
		if from, err = domain.ParseDate(f.From); err != nil {
			return nil, err
		}
	}
	if f.To != "" {
		if to, err = domain.ParseDate(f.To); err != nil {
			return nil, err
		}
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	if f.Category != "" {
		matched := records[:0:0]
		for _, r := range records {
			if r.InCategory(f.Category) {
				matched = append(matched, r)
			}
		}
		records = matched
	}
	if f.From != "" {
		if records, err = keepErr(records, func(r domain.FinanceRecord) (bool, error) {
			d, err := r.Day()
			return err == nil && !d.Before(from), err
		}); err != nil {
			return nil, err
		}
	}
	if f.To != "" {
		if records, err = keepErr(records, func(r domain.FinanceRecord) (bool, error) {
			d, err := r.Day()
			return err == nil && !d.After(to), err
		}); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Summary totals a period. Expense is the (negative) sum of negative
// amounts and Net is Income + Expense. Totals are accumulated as float64
// in file order and held as their exact binary value; print them with
// Cents.
type Summary struct {
	From    string
	To      string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// SummaryByPeriod filters by date range only and totals the result.
func (s *AnalyticsService) SummaryByPeriod(ctx context.Context, from, to string) (Summary, error) {
	list, err := s.Filter(ctx, FinanceFilter{From: from, To: to})
	if err != nil {
		return Summary{}, err
	}
	var income, expense float64
	for _, r := range list {
		switch {
		case r.IsIncome():
			income += r.Amount
		case r.IsExpense():
			expense += r.Amount
		}
	}
	return Summary{
		From:    from,
		To:      to,
		Income:  exact(income),
		Expense: exact(expense),
		Net:     exact(income + expense),
	}, nil
}

// CategorySummary is the per-category aggregate of a period.
type CategorySummary struct {
	Name    string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// ByCategory groups a period by category, matching names
// case-insensitively and keeping the first spelling seen. Largest
// turnover comes first.
func (s *AnalyticsService) ByCategory(ctx context.Context, from, to string) ([]CategorySummary, error) {
	list, err := s.Filter(ctx, FinanceFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	type totals struct {
		name            string
		income, expense float64
	}
	byKey := map[string]*totals{}
	var order []string
	for _, r := range list {
		key := strings.ToLower(strings.TrimSpace(r.Category))
		t, ok := byKey[key]
		if !ok {
			t = &totals{name: strings.TrimSpace(r.Category)}
			byKey[key] = t
			order = append(order, key)
		}
		if r.IsIncome() {
			t.income += r.Amount
		} else if r.IsExpense() {
			t.expense += r.Amount
		}
	}

	out := make([]CategorySummary, 0, len(order))
	for _, k := range order {
		t := byKey[k]
		out = append(out, CategorySummary{
			Name:    t.name,
			Income:  exact(t.income),
			Expense: exact(t.expense),
			Net:     exact(t.income + t.expense),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti := out[i].Income.Sub(out[i].Expense)
		tj := out[j].Income.Sub(out[j].Expense)
		return ti.GreaterThan(tj)
	})
	return out, nil
}

// Cents renders a total with two decimals, rounding half to even on the
// exact value the way printf does for binary floats.
func Cents(d decimal.Decimal) string {
	out := d.StringFixedBank(2)
	if d.IsNegative() && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}

// exact converts f without the shortest-repr rounding of NewFromFloat.
func exact(f float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(f, 'f', 1074, 64))
}

func keepErr(records []domain.FinanceRecord, pred func(domain.FinanceRecord) (bool, error)) ([]domain.FinanceRecord, error) {
	out := make([]domain.FinanceRecord, 0, len(records))
	for _, r := range records {
		ok, err := pred(r)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r)
		}
	}
	return out, nil
}
