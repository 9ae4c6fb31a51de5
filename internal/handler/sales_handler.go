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

type SalesHandler struct {
	salesService service.SalesService
}

func NewSalesHandler(salesService service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup) {
	sos := router.Group("/api/sales-orders")
	{
		sos.GET("", middleware.RequireCapability(model.CapSalesRead), h.List)
		sos.GET("/:id", middleware.RequireCapability(model.CapSalesRead), h.Get)
		sos.GET("/:id/invoice", middleware.RequireCapability(model.CapSalesRead), h.Invoice)
		sos.POST("", middleware.RequireCapability(model.CapSalesWrite), h.Create)
		sos.PUT("/:id", middleware.RequireCapability(model.CapSalesWrite), h.Update)
		sos.POST("/:id/confirm", middleware.RequireCapability(model.CapSalesWrite), h.Confirm)
		sos.POST("/:id/reserve", middleware.RequireCapability(model.CapSalesWrite), h.Reserve)
		sos.POST("/:id/dispatch", middleware.RequireCapability(model.CapSalesWrite), h.Dispatch)
		sos.POST("/:id/deliver", middleware.RequireCapability(model.CapSalesWrite), h.Deliver)
		sos.POST("/:id/cancel", middleware.RequireCapability(model.CapSalesWrite), h.Cancel)
	}
}

// List returns paginated sales orders
// @Summary      List sales orders
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 20)"
// @Param        search  query     string  false  "Search by order number or customer"
// @Param        status  query     string  false  "Filter by status"
// @Success      200  {object}  response.Response{data=[]model.SalesOrder}
// @Router       /api/sales-orders [get]
func (h *SalesHandler) List(c *gin.Context) {
	p := pagination.Parse(c)
	orders, total, err := h.salesService.ListSOs(c.Request.Context(), p.Page, p.Limit, c.Query("search"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, orders, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}

// Get returns a single sales order
// @Summary      Get sales order
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Sales Order ID"
// @Success      200  {object}  response.Response{data=model.SalesOrder}
// @Failure      404  {object}  response.Response
// @Router       /api/sales-orders/{id} [get]
func (h *SalesHandler) Get(c *gin.Context) {
	so, err := h.salesService.GetSO(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, so))
}

// Create opens a sales order with a derived total
// @Summary      Create sales order
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateSORequest  true  "Create SO Payload"
// @Success      201      {object}  response.Response{data=model.SalesOrder}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/sales-orders [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req service.CreateSORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	so, err := h.salesService.CreateSO(c.Request.Context(), userID, userName, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, so))
}

// Update rewrites the lines of a Draft or Confirmed sales order
// @Summary      Update sales order
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Sales Order ID"
// @Param        payload  body      service.UpdateSORequest  true  "Update SO Payload"
// @Success      200      {object}  response.Response{data=model.SalesOrder}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/sales-orders/{id} [put]
func (h *SalesHandler) Update(c *gin.Context) {
	var req service.UpdateSORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	so, err := h.salesService.UpdateSO(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, so))
}

// Confirm moves a Draft sales order to Confirmed
// @Summary      Confirm sales order
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Sales Order ID"
// @Success      200  {object}  response.Response{data=model.SalesOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/sales-orders/{id}/confirm [post]
func (h *SalesHandler) Confirm(c *gin.Context) {
	userID, userName := identity(c)
	so, err := h.salesService.ConfirmSO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, so))
}

// Reserve marks a Confirmed order Reserved and flags every line as reserved
// @Summary      Reserve sales order
// @Description  Marks the order Reserved and every line reserved. Stock quantities are not decremented.
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Sales Order ID"
// @Success      200  {object}  response.Response{data=model.SalesOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/sales-orders/{id}/reserve [post]
func (h *SalesHandler) Reserve(c *gin.Context) {
	userID, userName := identity(c)
	so, err := h.salesService.ReserveSO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, so))
}

// Dispatch moves a Reserved sales order to Dispatched
// @Summary      Dispatch sales order
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Sales Order ID"
// @Success      200  {object}  response.Response{data=model.SalesOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/sales-orders/{id}/dispatch [post]
func (h *SalesHandler) Dispatch(c *gin.Context) {
	userID, userName := identity(c)
	so, err := h.salesService.DispatchSO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, so))
}

// Deliver moves a Dispatched sales order to Delivered
// @Summary      Deliver sales order
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Sales Order ID"
// @Success      200  {object}  response.Response{data=model.SalesOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/sales-orders/{id}/deliver [post]
func (h *SalesHandler) Deliver(c *gin.Context) {
	userID, userName := identity(c)
	so, err := h.salesService.DeliverSO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, so))
}

// Cancel voids a sales order that has not been delivered
// @Summary      Cancel sales order
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Sales Order ID"
// @Success      200  {object}  response.Response{data=model.SalesOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/sales-orders/{id}/cancel [post]
func (h *SalesHandler) Cancel(c *gin.Context) {
	userID, userName := identity(c)
	so, err := h.salesService.CancelSO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, so))
}

// Invoice projects the invoice view of a sales order
// @Summary      Get invoice
// @Description  Returns the invoice projection of a sales order with a flat 10% tax. No state changes.
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Sales Order ID"
// @Success      200  {object}  response.Response{data=model.Invoice}
// @Failure      404  {object}  response.Response
// @Router       /api/sales-orders/{id}/invoice [get]
func (h *SalesHandler) Invoice(c *gin.Context) {
	invoice, err := h.salesService.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}
