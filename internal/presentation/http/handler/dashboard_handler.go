package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rgsalon/salonpos-api/internal/application/service"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles revenue summary HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles the revenue summary, optionally bounded by dates
func (h *DashboardHandler) Summary(c *gin.Context) {
	var start, end *time.Time
	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
		start = &parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			response.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		end = &parsed
	}

	summary, err := h.dashboardService.Summarize(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue summary retrieved successfully", summary)
}
