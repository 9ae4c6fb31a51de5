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

type PartnerHandler struct {
	partnerService service.PartnerService
}

func NewPartnerHandler(partnerService service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

func (h *PartnerHandler) RegisterRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/api/vendors")
	{
		vendors.GET("", middleware.RequireCapability(model.CapPartnersRead), h.ListVendors)
		vendors.GET("/:id", middleware.RequireCapability(model.CapPartnersRead), h.GetVendor)
		vendors.POST("", middleware.RequireCapability(model.CapPartnersWrite), h.CreateVendor)
		vendors.PUT("/:id", middleware.RequireCapability(model.CapPartnersWrite), h.UpdateVendor)
		vendors.PUT("/:id/status", middleware.RequireCapability(model.CapPartnersWrite), h.SetVendorStatus)
	}
	customers := router.Group("/api/customers")
	{
		customers.GET("", middleware.RequireCapability(model.CapPartnersRead), h.ListCustomers)
		customers.GET("/:id", middleware.RequireCapability(model.CapPartnersRead), h.GetCustomer)
		customers.POST("", middleware.RequireCapability(model.CapPartnersWrite), h.CreateCustomer)
		customers.PUT("/:id", middleware.RequireCapability(model.CapPartnersWrite), h.UpdateCustomer)
		customers.PUT("/:id/status", middleware.RequireCapability(model.CapPartnersWrite), h.SetCustomerStatus)
	}
}

// ListVendors returns paginated vendors
// @Summary      List vendors
// @Tags         partners
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 20)"
// @Param        search  query     string  false  "Search by name or contact"
// @Param        status  query     string  false  "Filter by status"
// @Success      200  {object}  response.Response{data=[]model.Vendor}
// @Router       /api/vendors [get]
func (h *PartnerHandler) ListVendors(c *gin.Context) {
	p := pagination.Parse(c)
	vendors, total, err := h.partnerService.ListVendors(c.Request.Context(), p.Page, p.Limit, c.Query("search"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, vendors, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}

// GetVendor returns a single vendor
// @Summary      Get vendor
// @Tags         partners
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Vendor ID"
// @Success      200  {object}  response.Response{data=model.Vendor}
// @Failure      404  {object}  response.Response
// @Router       /api/vendors/{id} [get]
func (h *PartnerHandler) GetVendor(c *gin.Context) {
	v, err := h.partnerService.GetVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, v))
}

// CreateVendor adds a vendor in Active status
// @Summary      Create vendor
// @Tags         partners
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.VendorRequest  true  "Vendor Payload"
// @Success      201      {object}  response.Response{data=model.Vendor}
// @Failure      400      {object}  response.Response
// @Router       /api/vendors [post]
func (h *PartnerHandler) CreateVendor(c *gin.Context) {
	var req service.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	v, err := h.partnerService.CreateVendor(c.Request.Context(), userID, userName, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, v))
}

// UpdateVendor rewrites a vendor's profile fields
// @Summary      Update vendor
// @Tags         partners
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Vendor ID"
// @Param        payload  body      service.VendorRequest  true  "Vendor Payload"
// @Success      200      {object}  response.Response{data=model.Vendor}
// @Failure      404      {object}  response.Response
// @Router       /api/vendors/{id} [put]
func (h *PartnerHandler) UpdateVendor(c *gin.Context) {
	var req service.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	v, err := h.partnerService.UpdateVendor(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, v))
}

// SetVendorStatus moves a vendor between Active, Inactive and Blacklisted
// @Summary      Set vendor status
// @Tags         partners
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Vendor ID"
// @Param        payload  body      service.SetPartnerStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=model.Vendor}
// @Failure      404      {object}  response.Response
// @Router       /api/vendors/{id}/status [put]
func (h *PartnerHandler) SetVendorStatus(c *gin.Context) {
	var req service.SetPartnerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	v, err := h.partnerService.SetVendorStatus(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, v))
}

// ListCustomers returns paginated customers
// @Summary      List customers
// @Tags         partners
// @Security     BearerAuth
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Items per page (default 20)"
// @Param        search  query     string  false  "Search by name or contact"
// @Param        status  query     string  false  "Filter by status"
// @Success      200  {object}  response.Response{data=[]model.Customer}
// @Router       /api/customers [get]
func (h *PartnerHandler) ListCustomers(c *gin.Context) {
	p := pagination.Parse(c)
	customers, total, err := h.partnerService.ListCustomers(c.Request.Context(), p.Page, p.Limit, c.Query("search"), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, customers, response.Meta{Page: p.Page, Limit: p.Limit, Total: total}))
}

// GetCustomer returns a single customer
// @Summary      Get customer
// @Tags         partners
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.Response{data=model.Customer}
// @Failure      404  {object}  response.Response
// @Router       /api/customers/{id} [get]
func (h *PartnerHandler) GetCustomer(c *gin.Context) {
	cu, err := h.partnerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cu))
}

// CreateCustomer adds a customer in Active status
// @Summary      Create customer
// @Tags         partners
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CustomerRequest  true  "Customer Payload"
// @Success      201      {object}  response.Response{data=model.Customer}
// @Failure      400      {object}  response.Response
// @Router       /api/customers [post]
func (h *PartnerHandler) CreateCustomer(c *gin.Context) {
	var req service.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	cu, err := h.partnerService.CreateCustomer(c.Request.Context(), userID, userName, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, cu))
}

// UpdateCustomer rewrites a customer's profile fields
// @Summary      Update customer
// @Tags         partners
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Customer ID"
// @Param        payload  body      service.CustomerRequest  true  "Customer Payload"
// @Success      200      {object}  response.Response{data=model.Customer}
// @Failure      404      {object}  response.Response
// @Router       /api/customers/{id} [put]
func (h *PartnerHandler) UpdateCustomer(c *gin.Context) {
	var req service.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	cu, err := h.partnerService.UpdateCustomer(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cu))
}

// SetCustomerStatus moves a customer between Active, Inactive and Blacklisted
// @Summary      Set customer status
// @Tags         partners
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Customer ID"
// @Param        payload  body      service.SetPartnerStatusRequest  true  "Status Payload"
// @Success      200      {object}  response.Response{data=model.Customer}
// @Failure      404      {object}  response.Response
// @Router       /api/customers/{id}/status [put]
func (h *PartnerHandler) SetCustomerStatus(c *gin.Context) {
	var req service.SetPartnerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, userName := identity(c)
	cu, err := h.partnerService.SetCustomerStatus(c.Request.Context(), userID, userName, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cu))
}
