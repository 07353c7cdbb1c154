package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	*ErrorHandler
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, errs *ErrorHandler) *InvoiceHandler {
	return &InvoiceHandler{ErrorHandler: errs, invoiceService: invoiceService}
}

// Preview handles POST /api/v1/businesses/:business_id/invoices/preview
// @Summary Compute invoice totals without saving
// @Description Runs the totals engine on a draft and reports validation problems alongside the rounded totals. Nothing is persisted.
// @Tags invoices
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param request body service.InvoiceDraft true "Invoice draft"
// @Success 200 {object} Response{data=service.InvoicePreview}
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Router /businesses/{business_id}/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	var draft service.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	preview, err := h.invoiceService.Preview(c.Request.Context(), bizID, draft)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, preview)
}

// Create handles POST /api/v1/businesses/:business_id/invoices
// @Summary Create an invoice
// @Description Validates the draft, computes and rounds the totals, assigns an invoice number and stores the snapshot with status DUE.
// @Tags invoices
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param request body service.InvoiceDraft true "Invoice draft"
// @Success 201 {object} Response{data=domain.Invoice}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 404 {object} ErrorResponseBody "Business not found"
// @Router /businesses/{business_id}/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	var draft service.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), bizID, draft)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// List handles GET /api/v1/businesses/:business_id/invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param business_id path string true "Business ID"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} Response{data=[]domain.Invoice,meta=PagMeta}
// @Router /businesses/{business_id}/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	invoices, total, err := h.invoiceService.List(c.Request.Context(), bizID, offset, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/businesses/:business_id/invoices/:id
// @Summary Get an invoice with its items
// @Tags invoices
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.Invoice}
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /businesses/{business_id}/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), bizID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Update handles PUT /api/v1/businesses/:business_id/invoices/:id
// @Summary Update an invoice
// @Description Recomputes the totals. Recorded payments are kept; a grand total below the amount already paid is rejected.
// @Tags invoices
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Invoice ID"
// @Param request body service.InvoiceDraft true "Invoice draft"
// @Success 200 {object} Response{data=domain.Invoice}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 409 {object} ErrorResponseBody "Total below paid amount"
// @Router /businesses/{business_id}/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	var draft service.InvoiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), bizID, invoiceID, draft)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Delete handles DELETE /api/v1/businesses/:business_id/invoices/:id
// @Summary Delete an invoice and its payments
// @Tags invoices
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /businesses/{business_id}/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), bizID, invoiceID); err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice deleted"})
}

// View handles GET /api/v1/businesses/:business_id/invoices/:id/view
// @Summary Get the presentation payload of an invoice
// @Description Returns the stored snapshot with business, customer, the effective template and presigned asset URLs.
// @Tags invoices
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=domain.InvoiceView}
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /businesses/{business_id}/invoices/{id}/view [get]
func (h *InvoiceHandler) View(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	view, err := h.invoiceService.View(c.Request.Context(), bizID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

// SendEmail handles POST /api/v1/businesses/:business_id/invoices/:id/email
// @Summary Email an invoice summary
// @Description Sends to the given address, or to the customer's email when none is given.
// @Tags invoices
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Invoice ID"
// @Param request body service.SendInvoiceInput false "Recipient and message"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 400 {object} ErrorResponseBody "No recipient"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /businesses/{business_id}/invoices/{id}/email [post]
func (h *InvoiceHandler) SendEmail(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	var input service.SendInvoiceInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
			return
		}
	}

	if err := h.invoiceService.SendByEmail(c.Request.Context(), bizID, invoiceID, input); err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice email sent"})
}

// Export handles GET /api/v1/businesses/:business_id/invoices/export
// @Summary Export the invoice register
// @Description Downloads every invoice of the business as CSV (UTF-8 with BOM) or XLSX.
// @Tags invoices
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param business_id path string true "Business ID"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Router /businesses/{business_id}/invoices/export [get]
func (h *InvoiceHandler) Export(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	file, err := h.invoiceService.Export(c.Request.Context(), bizID, domain.ExportFormat(c.DefaultQuery("format", "csv")))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
