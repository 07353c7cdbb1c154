package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"gstbill/internal/domain"
)

// BOM is the UTF-8 byte order mark Excel on Windows needs to detect the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Columns is the invoice register header row, shared with the XLSX export.
var Columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Due Date",
	"Customer",
	"Jurisdiction",
	"Discount Mode",
	"Subtotal",
	"Item Discounts",
	"Overall Discount",
	"CGST",
	"SGST",
	"IGST",
	"Total Tax",
	"Grand Total",
	"Paid",
	"Due",
	"Status",
	"Item Count",
	"Created At",
}

// Writer wraps csv.Writer for exporting the invoice register.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteBOM writes the byte order mark. Call it before the header.
func WriteBOM(w io.Writer) error {
	_, err := w.Write(BOM)
	return err
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(Columns)
}

// WriteInvoices writes one row per invoice. customerNames maps customer id to
// display name; unknown ids leave the column empty.
func (w *Writer) WriteInvoices(invoices []domain.Invoice, customerNames map[string]string) error {
	for i := range invoices {
		if err := w.csv.Write(Row(&invoices[i], customerNames[invoices[i].CustomerID.String()])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// Row converts an invoice to its register columns.
func Row(inv *domain.Invoice, customerName string) []string {
	return []string{
		inv.InvoiceNumber,
		inv.InvoiceDate.Format("2006-01-02"),
		formatDate(inv.DueDate),
		customerName,
		string(inv.Jurisdiction),
		string(inv.DiscountMode),
		inv.Subtotal.StringFixed(2),
		inv.TotalDiscount.StringFixed(2),
		inv.OverallDiscount.StringFixed(2),
		inv.CGST.StringFixed(2),
		inv.SGST.StringFixed(2),
		inv.IGST.StringFixed(2),
		inv.TotalTax.StringFixed(2),
		inv.GrandTotal.StringFixed(2),
		inv.PaidAmount.StringFixed(2),
		inv.DueAmount.StringFixed(2),
		string(inv.Status),
		fmt.Sprintf("%d", len(inv.Items)),
		inv.CreatedAt.Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	multiUnderscore = regexp.MustCompile(`_{2,}`)
)

// SanitizeFilename makes name safe for a Content-Disposition header: anything
// other than letters, digits, '-' and '_' becomes '_', runs collapse, and the
// result is capped at 100 bytes.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "invoices"
	}
	return s
}

// BuildFilename returns "{sanitized}_invoices_{YYYY-MM-DD}.{ext}".
func BuildFilename(businessName, ext string, now time.Time) string {
	return fmt.Sprintf("%s_invoices_%s.%s", SanitizeFilename(businessName), now.Format("2006-01-02"), ext)
}
