package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventorypro/internal/middleware"
	"inventorypro/internal/model"
	"inventorypro/internal/service"
	"inventorypro/pkg/response"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/dashboard/stats", middleware.RequireCapability(model.CapAnalyticsRead), h.Dashboard)
		api.GET("/analytics", middleware.RequireCapability(model.CapAnalyticsRead), h.Analytics)
	}
}

// Dashboard returns the landing-page stat cards
// @Summary      Dashboard stats
// @Description  Returns total products, stock value, low stock count and warehouse count
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.DashboardStats}
// @Router       /api/dashboard/stats [get]
func (h *StatisticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statisticsService.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}

// Analytics returns the sales-vs-purchases and category charts
// @Summary      Analytics charts
// @Description  Returns monthly sales vs purchases and the inventory-by-category breakdown. Cancelled orders are excluded.
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.AnalyticsResponse}
// @Router       /api/analytics [get]
func (h *StatisticsHandler) Analytics(c *gin.Context) {
	analytics, err := h.statisticsService.Analytics(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, analytics))
}
