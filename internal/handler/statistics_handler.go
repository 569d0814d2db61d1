package handler

import (
	"net/http"

	"frontdesk/internal/middleware"
	"frontdesk/internal/service"
	"frontdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	revenueService service.RevenueService
}

func NewStatisticsHandler(revenueService service.RevenueService) *StatisticsHandler {
	return &StatisticsHandler{revenueService: revenueService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statsGroup := router.Group("/api/statistics")
	statsGroup.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager))
	{
		statsGroup.GET("/settlements", h.GetSettledRevenue)
	}
}

// @Summary      Settled revenue
// @Description  Frozen totals grouped by check-out period. Defaults to the current month at the hotel.
// @Tags         statistics
// @Security     BearerAuth
// @Produce      json
// @Param        group_by   query     string  false  "day, week, month (default), quarter or year"
// @Param        from_date  query     string  false  "First check-out date, YYYY-MM-DD"
// @Param        to_date    query     string  false  "Last check-out date, YYYY-MM-DD"
// @Param        status     query     string  false  "CHECKED_OUT, CANCELLED or NO_SHOW"
// @Success      200        {object}  response.Response{data=service.RevenueReport}
// @Failure      400        {object}  response.Response
// @Router       /api/statistics/settlements [get]
func (h *StatisticsHandler) GetSettledRevenue(c *gin.Context) {
	report, err := h.revenueService.GetSettledRevenue(c.Request.Context(), service.RevenueFilter{
		GroupBy:  c.Query("group_by"),
		FromDate: c.Query("from_date"),
		ToDate:   c.Query("to_date"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}
