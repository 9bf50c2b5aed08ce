package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invoicely/backend/internal/domain/analytics"
	"github.com/invoicely/backend/internal/domain/billing"
	"github.com/invoicely/backend/internal/domain/shared"
)

// AnalyticsService runs the reporting engine: every operation is a
// stateless read-only transform over the current store snapshot.
// Store calls are bounded by a per-call timeout so a stuck query
// cannot hold a report request open indefinitely.
type AnalyticsService struct {
	store           analytics.Repository
	clients         billing.ClientRepository
	storeTimeout    time.Duration
	topClientsLimit int
	cashFlowMonths  int
	logger          *zap.Logger

	// now is swappable for tests
	now func() time.Time
}

// Options tunes the reporting defaults per deployment. Zero values
// fall back to the package defaults; a non-positive StoreTimeout
// disables the per-call bound.
type Options struct {
	TopClientsLimit int
	CashFlowMonths  int
	StoreTimeout    time.Duration
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(store analytics.Repository, clients billing.ClientRepository, opts Options, logger *zap.Logger) *AnalyticsService {
	if opts.TopClientsLimit <= 0 {
		opts.TopClientsLimit = DefaultTopClientsLimit
	}
	if opts.CashFlowMonths <= 0 {
		opts.CashFlowMonths = DefaultCashFlowMonths
	}

	return &AnalyticsService{
		store:           store,
		clients:         clients,
		storeTimeout:    opts.StoreTimeout,
		topClientsLimit: opts.TopClientsLimit,
		cashFlowMonths:  opts.CashFlowMonths,
		logger:          logger,
		now:             time.Now,
	}
}

// storeContext bounds a store call with the configured timeout
func (s *AnalyticsService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// ensureClient verifies the client exists before a client-scoped
// report runs; a missing client aborts the report with NotFound and no
// aggregation query is issued.
func (s *AnalyticsService) ensureClient(ctx context.Context, clientID uuid.UUID) error {
	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	if _, err := s.clients.FindByID(callCtx, clientID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFound("Client not found: " + clientID.String())
		}
		return err
	}
	return nil
}

// MonthlyRevenue returns realized revenue per month over all clients
func (s *AnalyticsService) MonthlyRevenue(ctx context.Context) ([]analytics.MonthlyRevenue, error) {
	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.MonthlyRevenue(callCtx, analytics.RevenueFilter{})
}

// MonthlyRevenueByClient returns a client's realized revenue per month
// within a trailing window. The months parameter is coerced leniently.
func (s *AnalyticsService) MonthlyRevenueByClient(ctx context.Context, clientID uuid.UUID, monthsParam string) ([]analytics.MonthlyRevenue, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	months := CoercePositive(monthsParam, DefaultRevenueMonths)
	from := s.now().AddDate(0, -months, 0)

	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.MonthlyRevenue(callCtx, analytics.RevenueFilter{ClientID: clientID, From: from})
}

// StatusDistribution returns invoice counts per status over all clients
func (s *AnalyticsService) StatusDistribution(ctx context.Context) ([]analytics.StatusCount, error) {
	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.StatusDistribution(callCtx, uuid.Nil)
}

// StatusDistributionByClient returns one client's invoice counts per status
func (s *AnalyticsService) StatusDistributionByClient(ctx context.Context, clientID uuid.UUID) ([]analytics.StatusCount, error) {
	if err := s.ensureClient(ctx, clientID); err != nil {
		return nil, err
	}

	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.StatusDistribution(callCtx, clientID)
}

// TopClients ranks clients by realized revenue. The limit parameter is
// coerced leniently to the configured default.
func (s *AnalyticsService) TopClients(ctx context.Context, limitParam string) ([]analytics.ClientRanking, error) {
	limit := CoercePositive(limitParam, s.topClientsLimit)

	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.TopClientsByRevenue(callCtx, limit)
}

// Aging buckets every outstanding invoice by days overdue as of now
func (s *AnalyticsService) Aging(ctx context.Context) ([]analytics.AgingBucket, error) {
	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	outstanding, err := s.store.OutstandingInvoices(callCtx)
	if err != nil {
		return nil, err
	}
	return analytics.BucketOutstanding(outstanding, s.now()), nil
}

// CashFlow projects expected vs realized inflow per month over a
// trailing window of due dates. The months parameter is coerced
// leniently to the configured default.
func (s *AnalyticsService) CashFlow(ctx context.Context, monthsParam string) ([]analytics.CashFlowPoint, error) {
	months := CoercePositive(monthsParam, s.cashFlowMonths)
	to := s.now()
	from := to.AddDate(0, -months, 0)

	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.CashFlow(callCtx, from, to)
}

// PaymentTrends reports payment behaviour over the trailing twelve
// months of invoice dates. The window is fixed, not parameterized.
func (s *AnalyticsService) PaymentTrends(ctx context.Context) ([]analytics.PaymentTrend, error) {
	from := s.now().AddDate(0, -12, 0)

	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.PaymentTrends(callCtx, from)
}

// Summary returns the dashboard headline counters
func (s *AnalyticsService) Summary(ctx context.Context) (*analytics.Summary, error) {
	callCtx, cancel := s.storeContext(ctx)
	defer cancel()

	return s.store.Summary(callCtx)
}
