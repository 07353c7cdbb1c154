package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// TemplateHandler handles system template selection and custom templates.
type TemplateHandler struct {
	*ErrorHandler
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService, errs *ErrorHandler) *TemplateHandler {
	return &TemplateHandler{ErrorHandler: errs, templateService: templateService}
}

// ListSystem handles GET /api/v1/businesses/:business_id/templates/system
// @Summary List system templates
// @Tags templates
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} Response{data=[]domain.PredefinedTemplate}
// @Router /businesses/{business_id}/templates/system [get]
func (h *TemplateHandler) ListSystem(c *gin.Context) {
	templates, err := h.templateService.ListSystemTemplates(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, templates)
}

// AssignSystem handles PUT /api/v1/businesses/:business_id/templates/system
// @Summary Select a system template
// @Description Stores the business's system template and accent color. The template's usage count grows only when the selection changes.
// @Tags templates
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param request body service.AssignTemplateInput true "Template and color"
// @Success 200 {object} Response{data=domain.BusinessTemplateSettings}
// @Failure 400 {object} ErrorResponseBody "Invalid color"
// @Failure 404 {object} ErrorResponseBody "Template not found"
// @Router /businesses/{business_id}/templates/system [put]
func (h *TemplateHandler) AssignSystem(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	var input service.AssignTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	settings, err := h.templateService.AssignSystemTemplate(c.Request.Context(), bizID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}

// GetSystemSettings handles GET /api/v1/businesses/:business_id/templates/system/settings
// @Summary Get the selected system template
// @Tags templates
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} Response{data=domain.BusinessTemplateSettings}
// @Failure 404 {object} ErrorResponseBody "No template selected"
// @Router /businesses/{business_id}/templates/system/settings [get]
func (h *TemplateHandler) GetSystemSettings(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	settings, err := h.templateService.GetSystemTemplateSettings(c.Request.Context(), bizID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}

// Create handles POST /api/v1/businesses/:business_id/templates
// @Summary Create a custom template
// @Tags templates
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param request body service.CreateTemplateInput true "Template"
// @Success 201 {object} Response{data=domain.InvoiceTemplate}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 409 {object} ErrorResponseBody "Duplicate name"
// @Router /businesses/{business_id}/templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	var input service.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	tmpl, err := h.templateService.Create(c.Request.Context(), bizID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondCreated(c, tmpl)
}

// List handles GET /api/v1/businesses/:business_id/templates
// @Summary List custom templates
// @Tags templates
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} Response{data=[]domain.InvoiceTemplate}
// @Router /businesses/{business_id}/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	templates, err := h.templateService.List(c.Request.Context(), bizID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, templates)
}

// GetDefault handles GET /api/v1/businesses/:business_id/templates/default
// @Summary Get the default custom template
// @Tags templates
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} Response{data=domain.InvoiceTemplate}
// @Failure 404 {object} ErrorResponseBody "No default template"
// @Router /businesses/{business_id}/templates/default [get]
func (h *TemplateHandler) GetDefault(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	tmpl, err := h.templateService.GetDefault(c.Request.Context(), bizID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, tmpl)
}

// GetByID handles GET /api/v1/businesses/:business_id/templates/:id
// @Summary Get a custom template
// @Tags templates
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Template ID"
// @Success 200 {object} Response{data=domain.InvoiceTemplate}
// @Failure 404 {object} ErrorResponseBody "Template not found"
// @Router /businesses/{business_id}/templates/{id} [get]
func (h *TemplateHandler) GetByID(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "id", "template")
	if !ok {
		return
	}

	tmpl, err := h.templateService.GetByID(c.Request.Context(), bizID, templateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, tmpl)
}

// Update handles PUT /api/v1/businesses/:business_id/templates/:id
// @Summary Update a custom template
// @Description Making a template the default clears the flag on the business's other templates.
// @Tags templates
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Template ID"
// @Param request body service.UpdateTemplateInput true "Fields to change"
// @Success 200 {object} Response{data=domain.InvoiceTemplate}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 404 {object} ErrorResponseBody "Template not found"
// @Router /businesses/{business_id}/templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "id", "template")
	if !ok {
		return
	}

	var input service.UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	tmpl, err := h.templateService.Update(c.Request.Context(), bizID, templateID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, tmpl)
}

// Delete handles DELETE /api/v1/businesses/:business_id/templates/:id
// @Summary Delete a custom template
// @Tags templates
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Template ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Template not found"
// @Router /businesses/{business_id}/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	templateID, ok := pathID(c, "id", "template")
	if !ok {
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), bizID, templateID); err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "template deleted"})
}
