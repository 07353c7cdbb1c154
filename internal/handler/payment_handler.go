package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	*ErrorHandler
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService, errs *ErrorHandler) *PaymentHandler {
	return &PaymentHandler{ErrorHandler: errs, paymentService: paymentService}
}

// Add handles POST /api/v1/businesses/:business_id/invoices/:id/payments
// @Summary Record a payment
// @Description The amount must be positive and not exceed the invoice's due amount. Returns the payment and the invoice's new paid, due and status.
// @Tags payments
// @Accept json
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Invoice ID"
// @Param request body service.AddPaymentInput true "Payment"
// @Success 201 {object} Response{data=service.PaymentReceipt}
// @Failure 400 {object} ErrorResponseBody "Validation failed"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 422 {object} ErrorResponseBody "Payment exceeds due amount"
// @Router /businesses/{business_id}/invoices/{id}/payments [post]
func (h *PaymentHandler) Add(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	var input service.AddPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	receipt, err := h.paymentService.Add(c.Request.Context(), bizID, invoiceID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondCreated(c, receipt)
}

// ListByInvoice handles GET /api/v1/businesses/:business_id/invoices/:id/payments
// @Summary List payments of an invoice
// @Tags payments
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Invoice ID"
// @Success 200 {object} Response{data=[]domain.Payment}
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /businesses/{business_id}/invoices/{id}/payments [get]
func (h *PaymentHandler) ListByInvoice(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	invoiceID, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	payments, err := h.paymentService.ListByInvoice(c.Request.Context(), bizID, invoiceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, payments)
}

// GetByID handles GET /api/v1/businesses/:business_id/payments/:id
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Payment ID"
// @Success 200 {object} Response{data=domain.Payment}
// @Failure 404 {object} ErrorResponseBody "Payment not found"
// @Router /businesses/{business_id}/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "id", "payment")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), bizID, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, payment)
}

// Delete handles DELETE /api/v1/businesses/:business_id/payments/:id
// @Summary Delete a payment
// @Description Removes the payment and re-derives the invoice's paid, due and status.
// @Tags payments
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Payment ID"
// @Success 200 {object} Response{data=domain.PaymentSummary}
// @Failure 404 {object} ErrorResponseBody "Payment not found"
// @Router /businesses/{business_id}/payments/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "id", "payment")
	if !ok {
		return
	}

	summary, err := h.paymentService.Delete(c.Request.Context(), bizID, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}
