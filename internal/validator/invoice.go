package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

var hundred = decimal.NewFromInt(100)

var invoiceRules = []rule[*domain.Invoice]{
	{key: "invoice.customer", check: func(inv *domain.Invoice) []domain.FieldViolation {
		if inv.CustomerID == uuid.Nil {
			return violation("customer_id", "a customer must be selected")
		}
		return nil
	}},
	{key: "invoice.items", check: func(inv *domain.Invoice) []domain.FieldViolation {
		if len(inv.Items) == 0 {
			return violation("items", "at least one item is required")
		}
		return nil
	}},
	{key: "invoice.discount_mode", check: func(inv *domain.Invoice) []domain.FieldViolation {
		if !inv.DiscountMode.Valid() {
			return violation("discount_mode", "must be PERCENT or ABSOLUTE")
		}
		return nil
	}},
	{key: "invoice.jurisdiction", check: func(inv *domain.Invoice) []domain.FieldViolation {
		if !inv.Jurisdiction.Valid() {
			return violation("jurisdiction", "must be INTRA or INTER")
		}
		return nil
	}},
	{key: "invoice.overall_discount", check: func(inv *domain.Invoice) []domain.FieldViolation {
		if inv.OverallDiscount.IsNegative() {
			return violation("overall_discount", "must not be negative")
		}
		return scaleCheck("overall_discount", inv.OverallDiscount, moneyPlaces)
	}},
	{key: "invoice.dates", check: func(inv *domain.Invoice) []domain.FieldViolation {
		if inv.InvoiceDate.IsZero() {
			return violation("invoice_date", "is required")
		}
		if inv.DueDate != nil && inv.DueDate.Before(inv.InvoiceDate) {
			return violation("due_date", "must not be before the invoice date")
		}
		return nil
	}},
	{key: "invoice.line_items", check: func(inv *domain.Invoice) []domain.FieldViolation {
		var out []domain.FieldViolation
		for i := range inv.Items {
			out = append(out, itemViolations(i, &inv.Items[i], inv.DiscountMode)...)
		}
		return out
	}},
}

func itemViolations(i int, it *domain.InvoiceItem, mode domain.DiscountMode) []domain.FieldViolation {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

	var out []domain.FieldViolation
	if strings.TrimSpace(it.Name) == "" {
		out = append(out, domain.FieldViolation{Field: field("name"), Message: "is required"})
	}
	if !it.Quantity.IsPositive() {
		out = append(out, domain.FieldViolation{Field: field("quantity"), Message: "must be greater than zero"})
	} else {
		out = append(out, scaleCheck(field("quantity"), it.Quantity, quantityPlaces)...)
	}
	if !it.UnitPrice.IsPositive() {
		out = append(out, domain.FieldViolation{Field: field("unit_price"), Message: "must be greater than zero"})
	} else {
		out = append(out, scaleCheck(field("unit_price"), it.UnitPrice, moneyPlaces)...)
	}
	if it.Discount.IsNegative() {
		out = append(out, domain.FieldViolation{Field: field("discount"), Message: "must not be negative"})
	} else if mode == domain.DiscountModePercent && it.Discount.GreaterThan(hundred) {
		out = append(out, domain.FieldViolation{Field: field("discount"), Message: "percentage must not exceed 100"})
	} else {
		out = append(out, scaleCheck(field("discount"), it.Discount, moneyPlaces)...)
	}
	if it.TaxRate.IsNegative() || it.TaxRate.GreaterThan(hundred) {
		out = append(out, domain.FieldViolation{Field: field("tax_rate"), Message: "must be between 0 and 100"})
	} else {
		out = append(out, scaleCheck(field("tax_rate"), it.TaxRate, moneyPlaces)...)
	}
	out = append(out, regexCheck(field("hsn_code"), it.HSNCode, "a 4 to 8 digit HSN/SAC code", hsnPattern)...)
	return out
}

// ValidateInvoice checks the user-entered header and line items.
func ValidateInvoice(inv *domain.Invoice) error {
	return run(inv, invoiceRules)
}
