package handler

import (
	"net/http"

	"frontdesk/internal/middleware"
	"frontdesk/internal/service"
	"frontdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxService service.TaxRuleService
}

func NewTaxHandler(taxService service.TaxRuleService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	tax := router.Group("/api/tax-rules")
	{
		tax.GET("", middleware.RequireRole(middleware.StaffRoles...), h.GetTaxRules)
		tax.POST("/refresh", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager), h.RefreshTaxRules)
	}
}

// GetTaxRules returns all tax rules in evaluation order
// @Summary      List tax rules
// @Tags         tax
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.TaxRuleResponse}
// @Router       /api/tax-rules [get]
func (h *TaxHandler) GetTaxRules(c *gin.Context) {
	rules, err := h.taxService.ListRules(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rules))
}

// RefreshTaxRules drops the cached rules after the backend changed them
// @Summary      Refresh tax rules
// @Description  Reloads rules from the database and notifies connected views
// @Tags         tax
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.TaxRuleResponse}
// @Router       /api/tax-rules/refresh [post]
func (h *TaxHandler) RefreshTaxRules(c *gin.Context) {
	rules, err := h.taxService.Refresh(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rules))
}
