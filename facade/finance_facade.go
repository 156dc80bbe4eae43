package facade

import (
	"context"

	"organizer/domain"
	"organizer/service"
)

type FinanceFacade struct {
	*service.Manager[domain.FinanceRecord]
	F   domain.Factory
	Ana *service.AnalyticsService
}

func (f FinanceFacade) Add(ctx context.Context, amount float64, category, date, description string) (domain.FinanceRecord, error) {
	return f.Create(ctx, f.F.NewFinanceRecord(amount, category, date, description))
}

func (f FinanceFacade) Edit(ctx context.Context, id int, amount float64, category, date, description string) (domain.FinanceRecord, error) {
	return f.Update(ctx, id, func(r *domain.FinanceRecord) {
		r.Amount = amount
		r.Category = category
		r.Date = date
		r.Description = description
	})
}

func (f FinanceFacade) Filter(ctx context.Context, category, from, to string) ([]domain.FinanceRecord, error) {
	return f.Ana.Filter(ctx, service.FinanceFilter{Category: category, From: from, To: to})
}

// Report totals the date range; the category is not considered.
func (f FinanceFacade) Report(ctx context.Context, from, to string) (service.Summary, error) {
	return f.Ana.SummaryByPeriod(ctx, from, to)
}

func (f FinanceFacade) Breakdown(ctx context.Context, from, to string) ([]service.CategorySummary, error) {
	return f.Ana.ByCategory(ctx, from, to)
}
