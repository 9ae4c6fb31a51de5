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

type WarehouseHandler struct {
	warehouseService service.WarehouseService
}

func NewWarehouseHandler(warehouseService service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

func (h *WarehouseHandler) RegisterRoutes(router *gin.RouterGroup) {
	warehouses := router.Group("/api/warehouses")
	{
		warehouses.GET("", middleware.RequireCapability(model.CapWarehousesRead), h.List)
		warehouses.GET("/:id", middleware.RequireCapability(model.CapWarehousesRead), h.Get)
		warehouses.POST("", middleware.RequireCapability(model.CapWarehousesWrite), h.Create)
		warehouses.DELETE("/:id", middleware.RequireCapability(model.CapWarehousesWrite), h.Delete)
		warehouses.GET("/:id/locations", middleware.RequireCapability(model.CapWarehousesRead), h.ListLocations)
		warehouses.POST("/:id/locations", middleware.RequireCapability(model.CapWarehousesWrite), h.CreateLocation)
	}
	transfers := router.Group("/api/transfers")
	{
		transfers.GET("", middleware.RequireCapability(model.CapWarehousesRead), h.ListTransfers)
		transfers.POST("", middleware.RequireCapability(model.CapWarehousesWrite), h.CreateTransfer)
		transfers.PUT("/:id/status", middleware.RequireCapability(model.CapWarehousesWrite), h.SetTransferStatus)
	}
}

// List returns every warehouse
// @Summary      List warehouses
// @Tags         warehouses
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Warehouse}
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.warehouseService.ListWarehouses(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, warehouses))
}

// Get returns a single warehouse
// @Summary      Get warehouse
// @Tags         warehouses
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Warehouse ID"
// @Success      200  {object}  response.Response{data=model.Warehouse}
// @Failure      404  {object}  response.Response
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) Get(c *gin.Context) {
	w, err := h.warehouseService.GetWarehouse(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, w))
}

// Create adds a warehouse keyed by its slug
// @Summary      Create warehouse
// @Tags         warehouses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateWarehouseRequest  true  "Warehouse Payload"
// @Success      201      {object}  response.Response{data=model.Warehouse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req service.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	w, err := h.warehouseService.CreateWarehouse(c.Request.Context(), userID, userName, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, w))
}

// Delete removes a warehouse and its locations
// @Summary      Delete warehouse
// @Tags         warehouses
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Warehouse ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *gin.Context) {
	userID, userName := identity(c)
	if err := h.warehouseService.DeleteWarehouse(c.Request.Context(), userID, userName, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Warehouse deleted successfully"))
}

// ListLocations returns a warehouse's rack/shelf/bin slots with utilization
// @Summary      List locations
// @Tags         warehouses
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Warehouse ID"
// @Success      200  {object}  response.Response{data=[]service.LocationResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/warehouses/{id}/locations [get]
func (h *WarehouseHandler) ListLocations(c *gin.Context) {
	locations, err := h.warehouseService.ListLocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, locations))
}

// CreateLocation adds a rack/shelf/bin slot to a warehouse
// @Summary      Create location
// @Tags         warehouses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Warehouse ID"
// @Param        payload  body      service.CreateLocationRequest  true  "Location Payload"
// @Success      201      {object}  response.Response{data=service.LocationResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/warehouses/{id}/locations [post]
func (h *WarehouseHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	loc, err := h.warehouseService.CreateLocation(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, loc))
}

// ListTransfers returns paginated stock transfers
// @Summary      List transfers
// @Tags         warehouses
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 20)"
// @Param        status  query     string  false  "Filter by status"
// @Success      200  {object}  response.Response{data=[]model.StockTransfer}
// @Router       /api/transfers [get]
func (h *WarehouseHandler) ListTransfers(c *gin.Context) {
	p := pagination.Parse(c)
	transfers, total, err := h.warehouseService.ListTransfers(c.Request.Context(), p.Page, p.Limit, c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, transfers, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}

// CreateTransfer requests a stock move between warehouses
// @Summary      Create transfer
// @Description  Opens a pending transfer between two warehouses. Transfers track their own lifecycle and never mutate stock quantities.
// @Tags         warehouses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTransferRequest  true  "Transfer Payload"
// @Success      201      {object}  response.Response{data=model.StockTransfer}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/transfers [post]
func (h *WarehouseHandler) CreateTransfer(c *gin.Context) {
	var req service.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	t, err := h.warehouseService.CreateTransfer(c.Request.Context(), userID, userName, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, t))
}

// SetTransferStatus advances a transfer through its lifecycle
// @Summary      Set transfer status
// @Tags         warehouses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Transfer ID"
// @Param        payload  body      service.SetTransferStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=model.StockTransfer}
// @Failure      409      {object}  response.Response
// @Router       /api/transfers/{id}/status [put]
func (h *WarehouseHandler) SetTransferStatus(c *gin.Context) {
	var req service.SetTransferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	t, err := h.warehouseService.SetTransferStatus(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, t))
}
