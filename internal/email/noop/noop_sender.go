package noop

import (
	"context"

	"go.uber.org/zap"

	"gstbill/internal/email"
	"gstbill/internal/port"
)

type noopSender struct {
	log *zap.Logger
}

// NewNoopSender creates an EmailSender that only logs what would have been sent.
func NewNoopSender(log *zap.Logger) port.EmailSender {
	return &noopSender{log: log}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, e port.InvoiceEmail) error {
	msg, err := email.RenderInvoice(e)
	if err != nil {
		return err
	}
	s.log.Info("noop email",
		zap.String("to", e.ToEmail),
		zap.String("subject", msg.Subject),
		zap.String("invoice_number", e.InvoiceNumber),
	)
	return nil
}
