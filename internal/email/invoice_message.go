// Package email renders invoice notifications shared by the email senders.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"gstbill/internal/port"
)

// Message is a rendered email.
type Message struct {
	Subject  string
	HTMLBody string
	TextBody string
}

var invoiceHTML = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice {{.InvoiceNumber}} from {{.BusinessName}}</h2>
  <p>Hi {{.ToName}},</p>
  {{if .Message}}<p>{{.Message}}</p>{{end}}
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 6px 0; color: #666;">Invoice date</td><td style="text-align: right;">{{.InvoiceDate.Format "02 Jan 2006"}}</td></tr>
    {{if .DueDate}}<tr><td style="padding: 6px 0; color: #666;">Due date</td><td style="text-align: right;">{{.DueDate.Format "02 Jan 2006"}}</td></tr>{{end}}
    <tr><td style="padding: 6px 0; color: #666;">Total</td><td style="text-align: right;">{{.GrandTotal}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Amount due</td><td style="text-align: right; font-weight: bold;">{{.DueAmount}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Status</td><td style="text-align: right;">{{.Status}}</td></tr>
  </table>
  {{if .ViewURL}}<p style="text-align: center; margin: 30px 0;">
    <a href="{{.ViewURL}}" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Invoice</a>
  </p>{{end}}
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">{{.BusinessName}}</p>
</body>
</html>`))

// RenderInvoice builds the subject and bodies for an invoice email.
func RenderInvoice(e port.InvoiceEmail) (Message, error) {
	var html bytes.Buffer
	if err := invoiceHTML.Execute(&html, e); err != nil {
		return Message{}, fmt.Errorf("rendering invoice email: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n", e.ToName)
	if e.Message != "" {
		fmt.Fprintf(&text, "%s\n\n", e.Message)
	}
	fmt.Fprintf(&text, "Invoice %s from %s\n", e.InvoiceNumber, e.BusinessName)
	fmt.Fprintf(&text, "Invoice date: %s\n", e.InvoiceDate.Format("02 Jan 2006"))
	if e.DueDate != nil {
		fmt.Fprintf(&text, "Due date: %s\n", e.DueDate.Format("02 Jan 2006"))
	}
	fmt.Fprintf(&text, "Total: %s\nAmount due: %s\nStatus: %s\n", e.GrandTotal, e.DueAmount, e.Status)
	if e.ViewURL != "" {
		fmt.Fprintf(&text, "\nView the invoice at:\n%s\n", e.ViewURL)
	}
	fmt.Fprintf(&text, "\n%s", e.BusinessName)

	return Message{
		Subject:  fmt.Sprintf("Invoice %s from %s", e.InvoiceNumber, e.BusinessName),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
