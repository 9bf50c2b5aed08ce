package persistence

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/invoicely/backend/internal/domain/analytics"
	"github.com/invoicely/backend/internal/domain/billing"
	"github.com/invoicely/backend/internal/domain/shared"
)

// GormAnalyticsRepository implements analytics.Repository using GORM.
// The grouped sums run in SQL; only rank assignment, derived ratios
// and month labels are computed client-side.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// MonthlyRevenue sums PAID invoices grouped by (year, month) of invoice date
func (r *GormAnalyticsRepository) MonthlyRevenue(ctx context.Context, filter analytics.RevenueFilter) ([]analytics.MonthlyRevenue, error) {
	type monthlyResult struct {
		Year         int
		Month        int
		Revenue      decimal.Decimal
		InvoiceCount int64
	}

	var results []monthlyResult

	query := r.db.WithContext(ctx).Table("invoices").
		Select(`
			CAST(EXTRACT(YEAR FROM invoice_date) AS INTEGER) as year,
			CAST(EXTRACT(MONTH FROM invoice_date) AS INTEGER) as month,
			COALESCE(SUM(total_amount), 0) as revenue,
			COUNT(*) as invoice_count
		`).
		Where("status = ?", string(billing.InvoiceStatusPaid))

	if filter.ClientID != uuid.Nil {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if !filter.From.IsZero() {
		query = query.Where("invoice_date >= ?", filter.From)
	}

	err := query.
		Group("EXTRACT(YEAR FROM invoice_date), EXTRACT(MONTH FROM invoice_date)").
		Order("year ASC, month ASC").
		Scan(&results).Error
	if err != nil {
		return nil, shared.NewStoreFailure("monthly revenue query failed: " + err.Error())
	}

	rows := make([]analytics.MonthlyRevenue, len(results))
	for i, res := range results {
		rows[i] = analytics.MonthlyRevenue{
			Year:         res.Year,
			Month:        res.Month,
			MonthName:    time.Month(res.Month).String(),
			Revenue:      res.Revenue.Round(2),
			InvoiceCount: res.InvoiceCount,
		}
	}
	return rows, nil
}

// StatusDistribution counts invoices per status, descending by count
func (r *GormAnalyticsRepository) StatusDistribution(ctx context.Context, clientID uuid.UUID) ([]analytics.StatusCount, error) {
	var results []analytics.StatusCount

	query := r.db.WithContext(ctx).Table("invoices").
		Select(`
			status,
			COUNT(*) as invoice_count,
			COALESCE(SUM(total_amount), 0) as total_amount
		`)

	if clientID != uuid.Nil {
		query = query.Where("client_id = ?", clientID)
	}

	err := query.
		Group("status").
		Order("invoice_count DESC").
		Scan(&results).Error
	if err != nil {
		return nil, shared.NewStoreFailure("status distribution query failed: " + err.Error())
	}
	return results, nil
}

// TopClientsByRevenue ranks clients by summed PAID revenue. Revenue
// ties break on client name so the ordering is deterministic. Rank and
// average invoice value are derived client-side.
func (r *GormAnalyticsRepository) TopClientsByRevenue(ctx context.Context, limit int) ([]analytics.ClientRanking, error) {
	if limit <= 0 {
		limit = 10
	}

	type clientResult struct {
		ClientID     uuid.UUID
		ClientName   string
		TotalRevenue decimal.Decimal
		InvoiceCount int64
	}

	var results []clientResult

	err := r.db.WithContext(ctx).Table("invoices i").
		Select(`
			i.client_id,
			c.name as client_name,
			COALESCE(SUM(i.total_amount), 0) as total_revenue,
			COUNT(i.id) as invoice_count
		`).
		Joins("JOIN clients c ON c.id = i.client_id").
		Where("i.status = ?", string(billing.InvoiceStatusPaid)).
		Group("i.client_id, c.name").
		Order("total_revenue DESC, client_name ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, shared.NewStoreFailure("top clients query failed: " + err.Error())
	}

	rankings := make([]analytics.ClientRanking, len(results))
	for i, res := range results {
		avg := decimal.Zero
		if res.InvoiceCount > 0 {
			avg = res.TotalRevenue.Div(decimal.NewFromInt(res.InvoiceCount)).Round(2)
		}
		rankings[i] = analytics.ClientRanking{
			Rank:                i + 1,
			ClientID:            res.ClientID,
			ClientName:          res.ClientName,
			TotalRevenue:        res.TotalRevenue.Round(2),
			InvoiceCount:        res.InvoiceCount,
			AverageInvoiceValue: avg,
		}
	}
	return rankings, nil
}

// OutstandingInvoices returns due date and amount for every unpaid invoice
func (r *GormAnalyticsRepository) OutstandingInvoices(ctx context.Context) ([]analytics.OutstandingInvoice, error) {
	var results []analytics.OutstandingInvoice

	err := r.db.WithContext(ctx).Table("invoices").
		Select("due_date, total_amount").
		Where("status IN ?", []string{
			string(billing.InvoiceStatusPending),
			string(billing.InvoiceStatusOverdue),
		}).
		Scan(&results).Error
	if err != nil {
		return nil, shared.NewStoreFailure("outstanding invoices query failed: " + err.Error())
	}
	return results, nil
}

// CashFlow sums expected and actual inflow per due-date month in [from, to]
func (r *GormAnalyticsRepository) CashFlow(ctx context.Context, from, to time.Time) ([]analytics.CashFlowPoint, error) {
	type cashFlowResult struct {
		Year           int
		Month          int
		ExpectedInflow decimal.Decimal
		ActualInflow   decimal.Decimal
	}

	var results []cashFlowResult

	err := r.db.WithContext(ctx).Table("invoices").
		Select(`
			CAST(EXTRACT(YEAR FROM due_date) AS INTEGER) as year,
			CAST(EXTRACT(MONTH FROM due_date) AS INTEGER) as month,
			COALESCE(SUM(CASE WHEN status IN ('PENDING', 'OVERDUE') THEN total_amount ELSE 0 END), 0) as expected_inflow,
			COALESCE(SUM(CASE WHEN status = 'PAID' THEN total_amount ELSE 0 END), 0) as actual_inflow
		`).
		Where("due_date BETWEEN ? AND ?", from, to).
		Group("EXTRACT(YEAR FROM due_date), EXTRACT(MONTH FROM due_date)").
		Order("year ASC, month ASC").
		Scan(&results).Error
	if err != nil {
		return nil, shared.NewStoreFailure("cash flow query failed: " + err.Error())
	}

	points := make([]analytics.CashFlowPoint, len(results))
	for i, res := range results {
		points[i] = analytics.CashFlowPoint{
			Year:           res.Year,
			Month:          res.Month,
			MonthName:      time.Month(res.Month).String(),
			ExpectedInflow: res.ExpectedInflow.Round(2),
			ActualInflow:   res.ActualInflow.Round(2),
		}
	}
	return points, nil
}

// PaymentTrends aggregates payment behaviour per invoice-date month.
// The efficiency denominator counts every invoice issued in the month
// regardless of status; a month without invoices scores 0.
func (r *GormAnalyticsRepository) PaymentTrends(ctx context.Context, from time.Time) ([]analytics.PaymentTrend, error) {
	type trendResult struct {
		Year           int
		Month          int
		AvgPaymentDays float64
		OnTimePayments int64
		LatePayments   int64
		TotalInvoices  int64
	}

	var results []trendResult

	err := r.db.WithContext(ctx).Table("invoices").
		Select(`
			CAST(EXTRACT(YEAR FROM invoice_date) AS INTEGER) as year,
			CAST(EXTRACT(MONTH FROM invoice_date) AS INTEGER) as month,
			COALESCE(AVG(CASE WHEN status = 'PAID' THEN EXTRACT(EPOCH FROM (updated_at - invoice_date)) / 86400.0 END), 0) as avg_payment_days,
			COALESCE(SUM(CASE WHEN status = 'PAID' AND updated_at <= due_date THEN 1 ELSE 0 END), 0) as on_time_payments,
			COALESCE(SUM(CASE WHEN status = 'PAID' AND updated_at > due_date THEN 1 ELSE 0 END), 0) as late_payments,
			COUNT(*) as total_invoices
		`).
		Where("invoice_date >= ?", from).
		Group("EXTRACT(YEAR FROM invoice_date), EXTRACT(MONTH FROM invoice_date)").
		Order("year ASC, month ASC").
		Scan(&results).Error
	if err != nil {
		return nil, shared.NewStoreFailure("payment trends query failed: " + err.Error())
	}

	trends := make([]analytics.PaymentTrend, len(results))
	for i, res := range results {
		efficiency := 0.0
		if res.TotalInvoices > 0 {
			efficiency = round2(float64(res.OnTimePayments) / float64(res.TotalInvoices) * 100)
		}
		trends[i] = analytics.PaymentTrend{
			Year:              res.Year,
			Month:             res.Month,
			MonthName:         time.Month(res.Month).String(),
			AvgPaymentDays:    round2(res.AvgPaymentDays),
			OnTimePayments:    res.OnTimePayments,
			LatePayments:      res.LatePayments,
			PaymentEfficiency: efficiency,
		}
	}
	return trends, nil
}

// Summary returns the dashboard headline counters
func (r *GormAnalyticsRepository) Summary(ctx context.Context) (*analytics.Summary, error) {
	type summaryResult struct {
		InvoiceCount     int64
		TotalInvoiced    decimal.Decimal
		TotalOutstanding decimal.Decimal
	}

	var result summaryResult
	err := r.db.WithContext(ctx).Table("invoices").
		Select(`
			COUNT(*) as invoice_count,
			COALESCE(SUM(total_amount), 0) as total_invoiced,
			COALESCE(SUM(CASE WHEN status = 'OVERDUE' THEN total_amount ELSE 0 END), 0) as total_outstanding
		`).
		Scan(&result).Error
	if err != nil {
		return nil, shared.NewStoreFailure("summary query failed: " + err.Error())
	}

	var clientCount int64
	if err := r.db.WithContext(ctx).Table("clients").Count(&clientCount).Error; err != nil {
		return nil, shared.NewStoreFailure("client count query failed: " + err.Error())
	}

	return &analytics.Summary{
		InvoiceCount:     result.InvoiceCount,
		ClientCount:      clientCount,
		TotalInvoiced:    result.TotalInvoiced.Round(2),
		TotalOutstanding: result.TotalOutstanding.Round(2),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
