package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstbill/internal/domain"
	"gstbill/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []domain.FieldViolation `json:"details,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "VALIDATION_ERROR", "request validation failed"
	case errors.Is(err, domain.ErrBusinessNotFound):
		return http.StatusNotFound, "BUSINESS_NOT_FOUND", "business not found"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "CUSTOMER_NOT_FOUND", "customer not found"
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "INVOICE_NOT_FOUND", "invoice not found"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, "PAYMENT_NOT_FOUND", "payment not found"
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, "TEMPLATE_NOT_FOUND", "template not found"
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, "ASSET_NOT_FOUND", "asset not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrPaymentExceedsDue):
		return http.StatusUnprocessableEntity, "PAYMENT_EXCEEDS_DUE", "payment amount exceeds due amount"
	case errors.Is(err, domain.ErrNonPositivePayment):
		return http.StatusBadRequest, "INVALID_PAYMENT_AMOUNT", "payment amount must be greater than zero"
	case errors.Is(err, domain.ErrInvoiceBelowPaid):
		return http.StatusConflict, "INVOICE_BELOW_PAID", "invoice total cannot be lower than the amount already paid"
	case errors.Is(err, domain.ErrDuplicateInvoiceNo):
		return http.StatusConflict, "DUPLICATE_INVOICE_NUMBER", "invoice number already exists"
	case errors.Is(err, domain.ErrDuplicateTemplateName):
		return http.StatusConflict, "DUPLICATE_TEMPLATE_NAME", "template name already exists"
	case errors.Is(err, domain.ErrDuplicateBusiness):
		return http.StatusConflict, "DUPLICATE_BUSINESS", "business already exists"
	case errors.Is(err, domain.ErrCustomerHasInvoices):
		return http.StatusConflict, "CUSTOMER_HAS_INVOICES", "customer has invoices and cannot be deleted"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrUnsupportedExport):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrNoRecipient):
		return http.StatusBadRequest, "NO_RECIPIENT", "no recipient email address; pass one or set the customer's email"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// ErrorHandler writes error envelopes and logs server-side failures.
type ErrorHandler struct {
	log *zap.Logger
}

// NewErrorHandler creates an ErrorHandler logging through log.
func NewErrorHandler(log *zap.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

// HandleError maps a domain error and sends the appropriate error response.
// Validation failures carry every field violation in error.details.
func (e *ErrorHandler) HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		e.log.Error("internal error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	apiErr := &APIError{Code: code, Message: msg}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		apiErr.Details = verr.Violations
	}
	c.JSON(status, APIResponse{Success: false, Error: apiErr})
}

// businessID reads the business scope placed on the context by the router.
// Returns false if it is missing (error response already written).
func businessID(c *gin.Context) (uuid.UUID, bool) {
	id, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "missing business context")
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the named path parameter as a UUID.
// Returns false if it is malformed (error response already written).
func pathID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
