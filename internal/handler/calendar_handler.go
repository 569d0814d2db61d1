package handler

import (
	"net/http"

	"frontdesk/internal/middleware"
	"frontdesk/internal/service"
	"frontdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

func (h *CalendarHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/calendar")
	group.Use(middleware.RequireRole(middleware.StaffRoles...))
	{
		group.GET("/today", h.GetToday)
	}
}

// GetToday returns today's and tomorrow's date at the hotel
// @Summary      Hotel calendar day
// @Description  Today and tomorrow as YYYY-MM-DD in the hotel timezone, independent of the server zone
// @Tags         calendar
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.CalendarResponse}
// @Router       /api/calendar/today [get]
func (h *CalendarHandler) GetToday(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.calendarService.Today()))
}
