package analytics

import "strconv"

// Default window sizes for caller-suppliable report parameters
const (
	DefaultTopClientsLimit = 10
	DefaultCashFlowMonths  = 12
	DefaultRevenueMonths   = 12

	// The dashboard view pins its sub-report parameters
	DashboardTopClients     = 5
	DashboardCashFlowMonths = 12
)

// CoercePositive parses a caller-supplied numeric parameter leniently:
// absent, non-numeric or non-positive input falls back to the default
// instead of failing. This mirrors the deliberate `parseInt || default`
// policy of the reporting API; do not tighten it into a validation
// error.
func CoercePositive(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
