package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrBusinessNotFound      = errors.New("business not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrTemplateNotFound      = errors.New("template not found")
	ErrAssetNotFound         = errors.New("asset not found")
	ErrForbidden             = errors.New("forbidden")
	ErrDuplicateInvoiceNo    = errors.New("invoice number already exists")
	ErrDuplicateTemplateName = errors.New("template name already exists")
	ErrPaymentExceedsDue     = errors.New("payment amount exceeds due amount")
	ErrNonPositivePayment    = errors.New("payment amount must be greater than zero")
	ErrInvoiceBelowPaid      = errors.New("invoice total cannot be lower than the amount already paid")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed          = errors.New("file upload to storage failed")
	ErrUnsupportedExport     = errors.New("unsupported export format")
	ErrNoRecipient           = errors.New("no recipient email address")
	ErrCustomerHasInvoices   = errors.New("customer has invoices and cannot be deleted")
	ErrDuplicateBusiness     = errors.New("business already exists")
)

// FieldViolation describes one failed validation on a request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Rule    string `json:"rule,omitempty"`
}

// ValidationError is returned when user input fails validation.
// It is never a silent correction: callers surface every violation.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError, or returns nil when there are no violations.
func NewValidationError(violations []FieldViolation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
