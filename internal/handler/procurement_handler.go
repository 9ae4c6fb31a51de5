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

type ProcurementHandler struct {
	procurementService service.ProcurementService
}

func NewProcurementHandler(procurementService service.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{procurementService: procurementService}
}

func (h *ProcurementHandler) RegisterRoutes(router *gin.RouterGroup) {
	pos := router.Group("/api/purchase-orders")
	{
		pos.GET("", middleware.RequireCapability(model.CapProcurementRead), h.List)
		pos.GET("/:id", middleware.RequireCapability(model.CapProcurementRead), h.Get)
		pos.POST("", middleware.RequireCapability(model.CapProcurementWrite), h.Create)
		pos.PUT("/:id", middleware.RequireCapability(model.CapProcurementWrite), h.Update)
		pos.POST("/:id/submit", middleware.RequireCapability(model.CapProcurementWrite), h.Submit)
		pos.POST("/:id/approve", middleware.RequireCapability(model.CapPOApprove), h.Approve)
		pos.POST("/:id/cancel", middleware.RequireCapability(model.CapProcurementWrite), h.Cancel)
		pos.POST("/:id/receive", middleware.RequireCapability(model.CapProcurementWrite), h.Receive)
	}
	grns := router.Group("/api/grns")
	{
		grns.GET("", middleware.RequireCapability(model.CapProcurementRead), h.ListGRNs)
	}
}

// List returns paginated purchase orders
// @Summary      List purchase orders
// @Tags         procurement
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 20)"
// @Param        search  query     string  false  "Search by PO number or vendor"
// @Param        status  query     string  false  "Filter by status"
// @Success      200  {object}  response.Response{data=[]model.PurchaseOrder}
// @Router       /api/purchase-orders [get]
func (h *ProcurementHandler) List(c *gin.Context) {
	p := pagination.Parse(c)
	orders, total, err := h.procurementService.ListPOs(c.Request.Context(), p.Page, p.Limit, c.Query("search"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, orders, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}

// Get returns a single purchase order
// @Summary      Get purchase order
// @Tags         procurement
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Purchase Order ID"
// @Success      200  {object}  response.Response{data=model.PurchaseOrder}
// @Failure      404  {object}  response.Response
// @Router       /api/purchase-orders/{id} [get]
func (h *ProcurementHandler) Get(c *gin.Context) {
	po, err := h.procurementService.GetPO(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, po))
}

// Create opens a purchase order with a derived total
// @Summary      Create purchase order
// @Description  Creates a purchase order; line totals and the order total are always recomputed server-side
// @Tags         procurement
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePORequest  true  "Create PO Payload"
// @Success      201      {object}  response.Response{data=model.PurchaseOrder}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/purchase-orders [post]
func (h *ProcurementHandler) Create(c *gin.Context) {
	var req service.CreatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	po, err := h.procurementService.CreatePO(c.Request.Context(), userID, userName, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, po))
}

// Update rewrites the lines of a Draft or Pending purchase order
// @Summary      Update purchase order
// @Tags         procurement
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Purchase Order ID"
// @Param        payload  body      service.UpdatePORequest  true  "Update PO Payload"
// @Success      200      {object}  response.Response{data=model.PurchaseOrder}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/purchase-orders/{id} [put]
func (h *ProcurementHandler) Update(c *gin.Context) {
	var req service.UpdatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	po, err := h.procurementService.UpdatePO(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, po))
}

// Submit moves a Draft purchase order to Pending
// @Summary      Submit purchase order
// @Tags         procurement
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Purchase Order ID"
// @Success      200  {object}  response.Response{data=model.PurchaseOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/purchase-orders/{id}/submit [post]
func (h *ProcurementHandler) Submit(c *gin.Context) {
	userID, userName := identity(c)
	po, err := h.procurementService.SubmitPO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, po))
}

// Approve moves a Pending purchase order to Approved
// @Summary      Approve purchase order
// @Description  Approves a Pending purchase order. Only the status and timestamp change.
// @Tags         procurement
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Purchase Order ID"
// @Success      200  {object}  response.Response{data=model.PurchaseOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/purchase-orders/{id}/approve [post]
func (h *ProcurementHandler) Approve(c *gin.Context) {
	userID, userName := identity(c)
	po, err := h.procurementService.ApprovePO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, po))
}

// Cancel voids a purchase order that has not been received
// @Summary      Cancel purchase order
// @Tags         procurement
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Purchase Order ID"
// @Success      200  {object}  response.Response{data=model.PurchaseOrder}
// @Failure      409  {object}  response.Response
// @Router       /api/purchase-orders/{id}/cancel [post]
func (h *ProcurementHandler) Cancel(c *gin.Context) {
	userID, userName := identity(c)
	po, err := h.procurementService.CancelPO(c.Request.Context(), userID, userName, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, po))
}

// Receive records a goods received note against an Approved purchase order
// @Summary      Receive goods
// @Description  Records a GRN against an Approved purchase order and marks it Received. Stock quantities are not changed; use the inventory adjust endpoint to book goods in.
// @Tags         procurement
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Purchase Order ID"
// @Param        payload  body      service.ReceiveGoodsRequest  true  "Receive Goods Payload"
// @Success      201      {object}  response.Response{data=model.GoodsReceivedNote}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/purchase-orders/{id}/receive [post]
func (h *ProcurementHandler) Receive(c *gin.Context) {
	var req service.ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	grn, err := h.procurementService.ReceiveGoods(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, grn))
}

// ListGRNs returns paginated goods received notes
// @Summary      List goods received notes
// @Tags         procurement
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20)"
// @Success      200  {object}  response.Response{data=[]model.GoodsReceivedNote}
// @Router       /api/grns [get]
func (h *ProcurementHandler) ListGRNs(c *gin.Context) {
	p := pagination.Parse(c)
	grns, total, err := h.procurementService.ListGRNs(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, grns, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}
