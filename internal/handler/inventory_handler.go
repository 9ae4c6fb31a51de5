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

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/api/inventory")
	{
		inventory.GET("", middleware.RequireCapability(model.CapInventoryRead), h.List)
		inventory.GET("/stats", middleware.RequireCapability(model.CapInventoryRead), h.Stats)
		inventory.GET("/low-stock", middleware.RequireCapability(model.CapInventoryRead), h.LowStock)
		inventory.GET("/expiring", middleware.RequireCapability(model.CapInventoryRead), h.Expiring)
		inventory.GET("/:id", middleware.RequireCapability(model.CapInventoryRead), h.Get)
		inventory.POST("/:id/adjust", middleware.RequireCapability(model.CapInventoryAdjust), h.Adjust)
		inventory.PUT("/:id/batches", middleware.RequireCapability(model.CapInventoryAdjust), h.UpdateBatches)
	}
}

// List returns paginated stock items with derived status fields
// @Summary      List stock items
// @Description  Retrieves paginated stock items with derived status, batch totals and expiry flags
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Items per page (default 20)"
// @Param        search     query     string  false  "Search by product name or SKU"
// @Param        warehouse  query     string  false  "Filter by warehouse id"
// @Param        status     query     string  false  "Filter by derived status"
// @Success      200  {object}  response.Response{data=[]service.StockItemResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	p := pagination.Parse(c)
	items, total, err := h.inventoryService.ListStock(c.Request.Context(), p.Page, p.Limit,
		c.Query("search"), c.Query("warehouse"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, items, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}

// Get returns a single stock item
// @Summary      Get stock item
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Stock Item ID"
// @Success      200  {object}  response.Response{data=service.StockItemResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.inventoryService.GetStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// Adjust applies an add/remove/set stock adjustment
// @Summary      Adjust stock
// @Description  Applies an add, remove or set adjustment to a stock item. Removals floor at zero.
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Stock Item ID"
// @Param        payload  body      service.AdjustStockRequest  true  "Adjustment Payload"
// @Success      200      {object}  response.Response{data=service.StockItemResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req service.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	item, err := h.inventoryService.AdjustStock(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// UpdateBatches replaces a stock item's batch list wholesale
// @Summary      Update batches
// @Description  Replaces the full batch list of a stock item
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Stock Item ID"
// @Param        payload  body      service.UpdateBatchesRequest  true  "Batches Payload"
// @Success      200      {object}  response.Response{data=service.StockItemResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/inventory/{id}/batches [put]
func (h *InventoryHandler) UpdateBatches(c *gin.Context) {
	var req service.UpdateBatchesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	item, err := h.inventoryService.UpdateBatches(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// LowStock returns items at or below their reorder point
// @Summary      List low stock items
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.StockItemResponse}
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.LowStock(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// Expiring returns items with a batch expiring within 30 days
// @Summary      List expiring items
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.StockItemResponse}
// @Router       /api/inventory/expiring [get]
func (h *InventoryHandler) Expiring(c *gin.Context) {
	items, err := h.inventoryService.Expiring(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// Stats returns the inventory header counters
// @Summary      Inventory stats
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.InventoryStats}
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *gin.Context) {
	stats, err := h.inventoryService.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
