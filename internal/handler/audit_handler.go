package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventorypro/internal/middleware"
	"inventorypro/internal/model"
	"inventorypro/internal/service"
	"inventorypro/pkg/pagination"
	"inventorypro/pkg/response"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	audit := router.Group("/api/audit-logs")
	{
		audit.GET("", middleware.RequireCapability(model.CapAuditRead), h.List)
	}
}

// List returns paginated audit entries, newest first
// @Summary      List audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200  {object}  response.Response{data=[]model.AuditLog}
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	p := pagination.Parse(c)
	logs, total, err := h.auditService.List(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, logs, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}
