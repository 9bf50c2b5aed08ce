package analytics

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/invoicely/backend/internal/domain/analytics"
)

// Dashboard composes the five sub-reports into one payload. The
// sub-queries fan out concurrently and the call fails atomically: the
// first error cancels the remaining queries and no partial dashboard
// is ever returned.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	var dashboard analytics.Dashboard

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.MonthlyRevenue(groupCtx)
		if err != nil {
			return err
		}
		dashboard.MonthlyRevenue = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.StatusDistribution(groupCtx)
		if err != nil {
			return err
		}
		dashboard.StatusDistribution = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.TopClients(groupCtx, strconv.Itoa(DashboardTopClients))
		if err != nil {
			return err
		}
		dashboard.TopClients = rows
		return nil
	})

	g.Go(func() error {
		buckets, err := s.Aging(groupCtx)
		if err != nil {
			return err
		}
		dashboard.Aging = buckets
		return nil
	})

	g.Go(func() error {
		points, err := s.CashFlow(groupCtx, strconv.Itoa(DashboardCashFlowMonths))
		if err != nil {
			return err
		}
		dashboard.CashFlow = points
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard.LastUpdated = s.now().UTC()
	return &dashboard, nil
}
