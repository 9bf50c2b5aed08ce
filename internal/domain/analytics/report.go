// Package analytics contains the reporting read models and the store
// contract the reporting engine aggregates over. Every model here is
// derived and ephemeral: computed per request, never persisted.
package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyRevenue is one month of realized revenue over PAID invoices
type MonthlyRevenue struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	MonthName    string          `json:"month_name"`
	Revenue      decimal.Decimal `json:"revenue"`
	InvoiceCount int64           `json:"invoice_count"`
}

// StatusCount is the number and value of invoices in one status
type StatusCount struct {
	Status       string          `json:"status"`
	InvoiceCount int64           `json:"invoice_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// ClientRanking is one row of the top-clients-by-revenue report
type ClientRanking struct {
	Rank                int             `json:"rank"`
	ClientID            uuid.UUID       `json:"client_id"`
	ClientName          string          `json:"client_name"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	InvoiceCount        int64           `json:"invoice_count"`
	AverageInvoiceValue decimal.Decimal `json:"average_invoice_value"`
}

// CashFlowPoint is one month of expected vs realized inflow, keyed by
// invoice due date
type CashFlowPoint struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	MonthName      string          `json:"month_name"`
	ExpectedInflow decimal.Decimal `json:"expected_inflow"`
	ActualInflow   decimal.Decimal `json:"actual_inflow"`
}

// PaymentTrend is one month of payment behaviour over PAID invoices.
// PaymentEfficiency divides on-time payments by all invoices issued in
// the month, whatever their status; a month with no invoices scores 0.
type PaymentTrend struct {
	Year              int     `json:"year"`
	Month             int     `json:"month"`
	MonthName         string  `json:"month_name"`
	AvgPaymentDays    float64 `json:"avg_payment_days"`
	OnTimePayments    int64   `json:"on_time_payments"`
	LatePayments      int64   `json:"late_payments"`
	PaymentEfficiency float64 `json:"payment_efficiency"`
}

// OutstandingInvoice is the slice of an unpaid invoice the aging
// bucketer needs: when it was due and how much is owed
type OutstandingInvoice struct {
	DueDate     time.Time       `json:"due_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Summary holds the dashboard headline counters
type Summary struct {
	InvoiceCount     int64           `json:"invoice_count"`
	ClientCount      int64           `json:"client_count"`
	TotalInvoiced    decimal.Decimal `json:"total_invoiced"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// Dashboard is the merged payload the reporting facade produces
type Dashboard struct {
	MonthlyRevenue     []MonthlyRevenue `json:"monthly_revenue"`
	StatusDistribution []StatusCount    `json:"status_distribution"`
	TopClients         []ClientRanking  `json:"top_clients"`
	Aging              []AgingBucket    `json:"aging"`
	CashFlow           []CashFlowPoint  `json:"cash_flow"`
	LastUpdated        time.Time        `json:"lastUpdated"`
}

// RevenueFilter narrows revenue aggregation queries. A Nil ClientID
// means all clients; a zero From means no lower bound on invoice date.
type RevenueFilter struct {
	ClientID uuid.UUID
	From     time.Time
}
