package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	analyticsapp "github.com/invoicely/backend/internal/application/analytics"
)

// AnalyticsHandler exposes the reporting engine. Every endpoint is a
// read-only query; numeric window parameters are coerced leniently by
// the service rather than validated here.
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *analyticsapp.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *analyticsapp.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// RegisterRoutes registers all reporting routes
func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/aging", h.Aging)
		reports.GET("/revenue/monthly", h.MonthlyRevenue)
		reports.GET("/status-distribution", h.StatusDistribution)
		reports.GET("/clients/top", h.TopClients)
		reports.GET("/clients/:id/revenue", h.MonthlyRevenueByClient)
		reports.GET("/clients/:id/status-distribution", h.StatusDistributionByClient)
		reports.GET("/cash-flow", h.CashFlow)
		reports.GET("/payment-trends", h.PaymentTrends)
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/stats", h.Summary)
	}
}

// Aging returns outstanding invoices bucketed by days overdue
func (h *AnalyticsHandler) Aging(c *gin.Context) {
	buckets, err := h.analyticsService.Aging(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, buckets)
}

// MonthlyRevenue returns realized revenue per month over all clients
func (h *AnalyticsHandler) MonthlyRevenue(c *gin.Context) {
	rows, err := h.analyticsService.MonthlyRevenue(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// MonthlyRevenueByClient returns one client's realized revenue per
// month within a trailing window
func (h *AnalyticsHandler) MonthlyRevenueByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	rows, err := h.analyticsService.MonthlyRevenueByClient(c.Request.Context(), clientID, c.Query("months"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// StatusDistribution returns invoice counts per status over all clients
func (h *AnalyticsHandler) StatusDistribution(c *gin.Context) {
	rows, err := h.analyticsService.StatusDistribution(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// StatusDistributionByClient returns one client's invoice counts per
// status
func (h *AnalyticsHandler) StatusDistributionByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	rows, err := h.analyticsService.StatusDistributionByClient(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// TopClients ranks clients by realized revenue
func (h *AnalyticsHandler) TopClients(c *gin.Context) {
	rows, err := h.analyticsService.TopClients(c.Request.Context(), c.Query("limit"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// CashFlow projects expected vs realized inflow per month
func (h *AnalyticsHandler) CashFlow(c *gin.Context) {
	points, err := h.analyticsService.CashFlow(c.Request.Context(), c.Query("months"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, points)
}

// PaymentTrends reports payment behaviour over the trailing twelve
// months
func (h *AnalyticsHandler) PaymentTrends(c *gin.Context) {
	trends, err := h.analyticsService.PaymentTrends(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, trends)
}

// Dashboard returns the combined reporting payload
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// Summary returns the dashboard headline counters
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
