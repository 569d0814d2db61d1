package handler

import (
	"net/http"

	"frontdesk/internal/middleware"
	"frontdesk/internal/service"
	"frontdesk/pkg/pagination"
	"frontdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	settlementService service.SettlementService
}

func NewSettlementHandler(settlementService service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

func (h *SettlementHandler) RegisterRoutes(router *gin.RouterGroup) {
	reservations := router.Group("/api/reservations")
	{
		reservations.POST("/:id/settle", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager, middleware.RoleReceptionist), h.Settle)
		reservations.GET("/:id/snapshot", middleware.RequireRole(middleware.StaffRoles...), h.GetSnapshot)
	}

	settlements := router.Group("/api/settlements")
	settlements.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager))
	{
		settlements.GET("", h.ListSettlements)
	}
}

// Settle freezes a reservation's charges
// @Summary      Settle a reservation
// @Description  Writes the charge snapshot for a CHECKED_OUT, CANCELLED or NO_SHOW reservation. Repeating the call returns the first snapshot.
// @Tags         reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Reservation ID"
// @Param        request  body      service.SettleRequest  true  "Final stay and rates"
// @Success      201      {object}  response.Response{data=service.SnapshotResponse}  "Snapshot created"
// @Success      200      {object}  response.Response{data=service.SnapshotResponse}  "Already settled"
// @Failure      400      {object}  response.Response
// @Router       /api/reservations/{id}/settle [post]
func (h *SettlementHandler) Settle(c *gin.Context) {
	var req service.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	snapshot, created, err := h.settlementService.Settle(c.Request.Context(), c.Param("id"), req, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.Success(status, snapshot))
}

// GetSnapshot returns the frozen charges of a settled reservation
// @Summary      Get charge snapshot
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Reservation ID"
// @Success      200  {object}  response.Response{data=service.SnapshotResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/reservations/{id}/snapshot [get]
func (h *SettlementHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.settlementService.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, snapshot))
}

// ListSettlements pages through snapshots, newest first
// @Summary      List settlements
// @Tags         reservations
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "CHECKED_OUT, CANCELLED or NO_SHOW"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=pagination.Page}
// @Failure      400     {object}  response.Response
// @Router       /api/settlements [get]
func (h *SettlementHandler) ListSettlements(c *gin.Context) {
	params := pagination.Parse(c)

	snapshots, total, err := h.settlementService.ListSnapshots(c.Request.Context(), c.Query("status"), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, params.Wrap(snapshots, total)))
}
