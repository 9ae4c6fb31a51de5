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

// OrderHandler serves the warehouse-floor fulfillment board
type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/orders")
	{
		orders.GET("", middleware.RequireCapability(model.CapOrdersRead), h.List)
		orders.GET("/:id", middleware.RequireCapability(model.CapOrdersRead), h.Get)
		orders.POST("", middleware.RequireCapability(model.CapOrdersWrite), h.Create)
		orders.PUT("/:id/status", middleware.RequireCapability(model.CapOrdersWrite), h.SetStatus)
		orders.PUT("/:id/priority", middleware.RequireCapability(model.CapOrdersWrite), h.SetPriority)
	}
}

// List returns the paginated fulfillment board
// @Summary      List fulfillment orders
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        page      query     int     false  "Page number (default 1)"
// @Param        limit     query     int     false  "Items per page (default 20)"
// @Param        search    query     string  false  "Search by order number or customer"
// @Param        status    query     string  false  "Filter by status"
// @Param        priority  query     string  false  "Filter by priority"
// @Success      200  {object}  response.Response{data=[]model.FulfillmentOrder}
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	p := pagination.Parse(c)
	orders, total, err := h.orderService.List(c.Request.Context(), p.Page, p.Limit,
		c.Query("search"), c.Query("status"), c.Query("priority"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, orders, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}

// Get returns a single fulfillment order
// @Summary      Get fulfillment order
// @Tags         orders
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response{data=model.FulfillmentOrder}
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, o))
}

// Create adds a fulfillment order in Pending status
// @Summary      Create fulfillment order
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateFulfillmentRequest  true  "Order Payload"
// @Success      201      {object}  response.Response{data=model.FulfillmentOrder}
// @Failure      400      {object}  response.Response
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateFulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	o, err := h.orderService.Create(c.Request.Context(), userID, userName, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, o))
}

// SetStatus moves a board order between statuses
// @Summary      Set fulfillment status
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                               true  "Order ID"
// @Param        payload  body      service.SetFulfillmentStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=model.FulfillmentOrder}
// @Failure      409      {object}  response.Response
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req service.SetFulfillmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	o, err := h.orderService.SetStatus(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, o))
}

// SetPriority changes a board order's priority
// @Summary      Set fulfillment priority
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                                 true  "Order ID"
// @Param        payload  body      service.SetFulfillmentPriorityRequest  true  "Priority Payload"
// @Success      200      {object}  response.Response{data=model.FulfillmentOrder}
// @Failure      404      {object}  response.Response
// @Router       /api/orders/{id}/priority [put]
func (h *OrderHandler) SetPriority(c *gin.Context) {
	var req service.SetFulfillmentPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	o, err := h.orderService.SetPriority(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, o))
}
