package handler

import (
	"net/http"

	"frontdesk/internal/middleware"
	"frontdesk/internal/service"
	"frontdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type StayHandler struct {
	stayService service.StayService
}

func NewStayHandler(stayService service.StayService) *StayHandler {
	return &StayHandler{stayService: stayService}
}

func (h *StayHandler) RegisterRoutes(router *gin.RouterGroup) {
	stays := router.Group("/api/stays")
	stays.Use(middleware.RequireRole(middleware.StaffRoles...))
	{
		stays.POST("/validate", h.ValidateStay)
		stays.POST("/quote", h.QuoteStay)
	}

	reservations := router.Group("/api/reservations")
	reservations.Use(middleware.RequireRole(middleware.StaffRoles...))
	{
		reservations.POST("/total", h.ReservationTotal)
	}
}

// ValidateStay checks booking dates and times against the hotel's rules
// @Summary      Validate a stay
// @Description  Returns ok=false with per-field messages; a failed validation is still a 200
// @Tags         stays
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      service.StayRequest  true  "Stay dates"
// @Success      200      {object}  response.Response{data=datemath.StayValidation}
// @Failure      400      {object}  response.Response
// @Router       /api/stays/validate [post]
func (h *StayHandler) ValidateStay(c *gin.Context) {
	var req service.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.stayService.Validate(req)))
}

// QuoteStay prices a stay with the ordered tax rules
// @Summary      Quote a stay
// @Description  Validates the stay and returns the tax breakdown. Omit rules to use the configured ones.
// @Tags         stays
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      service.QuoteRequest  true  "Stay and rates"
// @Success      200      {object}  response.Response{data=service.QuoteResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/stays/quote [post]
func (h *StayHandler) QuoteStay(c *gin.Context) {
	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := h.stayService.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}

// ReservationTotal returns the total a reservation view should display
// @Summary      Reservation total
// @Description  Settled reservations show their frozen total; others are recomputed with current rules
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      service.ReservationTotalRequest  true  "Reservation"
// @Success      200      {object}  response.Response{data=service.ReservationTotalResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/reservations/total [post]
func (h *StayHandler) ReservationTotal(c *gin.Context) {
	var req service.ReservationTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	total, err := h.stayService.ReservationTotal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, total))
}
