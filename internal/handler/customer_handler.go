package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// CustomerHandler handles customer management endpoints.
type CustomerHandler struct {
	*ErrorHandler
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService, errs *ErrorHandler) *CustomerHandler {
	return &CustomerHandler{ErrorHandler: errs, customerService: customerService}
}

// Create handles POST /api/v1/businesses/:business_id/customers
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param request body CustomerRequest true "Customer"
// @Success 201 {object} Response{data=domain.Customer}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Router /businesses/{business_id}/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	var input service.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), bizID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondCreated(c, customer)
}

// List handles GET /api/v1/businesses/:business_id/customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} Response{data=[]domain.Customer,meta=PagMeta}
// @Router /businesses/{business_id}/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	customers, total, err := h.customerService.List(c.Request.Context(), bizID, offset, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Search handles GET /api/v1/businesses/:business_id/customers/search
// @Summary Search customers by name
// @Description Case-insensitive substring match on the customer name.
// @Tags customers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param q query string false "Name fragment"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} Response{data=[]domain.Customer,meta=PagMeta}
// @Router /businesses/{business_id}/customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	customers, total, err := h.customerService.Search(c.Request.Context(), bizID, c.Query("q"), offset, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/businesses/:business_id/customers/:id
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Customer ID"
// @Success 200 {object} Response{data=domain.Customer}
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Router /businesses/{business_id}/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), bizID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, customer)
}

// Update handles PUT /api/v1/businesses/:business_id/customers/:id
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Customer ID"
// @Param request body UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.Customer}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Router /businesses/{business_id}/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	var input service.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), bizID, customerID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, customer)
}

// Delete handles DELETE /api/v1/businesses/:business_id/customers/:id
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Customer ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Failure 409 {object} ErrorResponseBody "Customer has invoices"
// @Router /businesses/{business_id}/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	customerID, ok := pathID(c, "id", "customer")
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), bizID, customerID); err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "customer deleted"})
}
