package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// BusinessHandler handles business profile endpoints.
type BusinessHandler struct {
	*ErrorHandler
	businessService service.BusinessService
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessService service.BusinessService, errs *ErrorHandler) *BusinessHandler {
	return &BusinessHandler{ErrorHandler: errs, businessService: businessService}
}

// Create handles POST /api/v1/businesses
// @Summary Create a business profile
// @Description Registers the seller. Name, address, state code and a 10-digit phone are required; an optional GSTIN must start with the state code.
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body BusinessRequest true "Business profile"
// @Success 201 {object} Response{data=domain.Business}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Router /businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	var input service.CreateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	business, err := h.businessService.Create(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondCreated(c, business)
}

// GetByID handles GET /api/v1/businesses/:business_id
// @Summary Get a business profile
// @Tags businesses
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} Response{data=domain.Business}
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Router /businesses/{business_id} [get]
func (h *BusinessHandler) GetByID(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetByID(c.Request.Context(), bizID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, business)
}

// Update handles PUT /api/v1/businesses/:business_id
// @Summary Update a business profile
// @Description Only the fields present in the body are changed.
// @Tags businesses
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param request body UpdateBusinessRequest true "Fields to change"
// @Success 200 {object} Response{data=domain.Business}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Router /businesses/{business_id} [put]
func (h *BusinessHandler) Update(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	var input service.UpdateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	business, err := h.businessService.Update(c.Request.Context(), bizID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, business)
}
