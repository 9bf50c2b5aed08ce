package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the read-only store contract the reporting engine
// aggregates over. Implementations run the grouped-sum queries in SQL;
// ordering and grouping keys are part of the contract.
type Repository interface {
	// MonthlyRevenue sums PAID invoices grouped by (year, month) of
	// invoice date, ascending
	MonthlyRevenue(ctx context.Context, filter RevenueFilter) ([]MonthlyRevenue, error)

	// StatusDistribution counts invoices per status, descending by
	// count. A Nil clientID means all clients.
	StatusDistribution(ctx context.Context, clientID uuid.UUID) ([]StatusCount, error)

	// TopClientsByRevenue ranks clients by summed PAID revenue,
	// descending, ties broken by client name, truncated to limit
	TopClientsByRevenue(ctx context.Context, limit int) ([]ClientRanking, error)

	// OutstandingInvoices returns due date and amount for every
	// PENDING or OVERDUE invoice
	OutstandingInvoices(ctx context.Context) ([]OutstandingInvoice, error)

	// CashFlow sums expected (PENDING+OVERDUE) and actual (PAID)
	// inflow grouped by (year, month) of due date within [from, to],
	// ascending
	CashFlow(ctx context.Context, from, to time.Time) ([]CashFlowPoint, error)

	// PaymentTrends aggregates payment behaviour grouped by (year,
	// month) of invoice date from the given instant onward, ascending
	PaymentTrends(ctx context.Context, from time.Time) ([]PaymentTrend, error)

	// Summary returns the headline counters: invoice count, client
	// count, total invoiced and total outstanding (OVERDUE) amount
	Summary(ctx context.Context) (*Summary, error)
}
