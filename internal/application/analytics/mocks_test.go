package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/invoicely/backend/internal/domain/analytics"
	"github.com/invoicely/backend/internal/domain/billing"
	"github.com/invoicely/backend/internal/domain/shared"
)

// MockStore is a mock implementation of analytics.Repository
type MockStore struct {
	mock.Mock
}

func (m *MockStore) MonthlyRevenue(ctx context.Context, filter analytics.RevenueFilter) ([]analytics.MonthlyRevenue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.MonthlyRevenue), args.Error(1)
}

func (m *MockStore) StatusDistribution(ctx context.Context, clientID uuid.UUID) ([]analytics.StatusCount, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.StatusCount), args.Error(1)
}

func (m *MockStore) TopClientsByRevenue(ctx context.Context, limit int) ([]analytics.ClientRanking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.ClientRanking), args.Error(1)
}

func (m *MockStore) OutstandingInvoices(ctx context.Context) ([]analytics.OutstandingInvoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.OutstandingInvoice), args.Error(1)
}

func (m *MockStore) CashFlow(ctx context.Context, from, to time.Time) ([]analytics.CashFlowPoint, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.CashFlowPoint), args.Error(1)
}

func (m *MockStore) PaymentTrends(ctx context.Context, from time.Time) ([]analytics.PaymentTrend, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.PaymentTrend), args.Error(1)
}

func (m *MockStore) Summary(ctx context.Context) (*analytics.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Summary), args.Error(1)
}

// MockClientRepository is a mock implementation of billing.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Save(ctx context.Context, client *billing.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[billing.Client], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[billing.Client]), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
