package port

import (
	"context"
	"time"
)

// InvoiceEmail carries what an invoice notification needs.
type InvoiceEmail struct {
	ToEmail       string
	ToName        string
	BusinessName  string
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       *time.Time
	GrandTotal    string
	DueAmount     string
	Status        string
	ViewURL       string
	Message       string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, email InvoiceEmail) error
}
