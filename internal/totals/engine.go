// Package totals turns invoice line items and header adjustments into a
// GST totals breakdown. All arithmetic is decimal; rounding happens only in
// Rounded, at the display and persistence boundary.
package totals

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// LineItem is one billable row as entered by the user.
type LineItem struct {
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	TaxRate     decimal.Decimal
}

// LineTotals is the computed breakdown of a single line item.
type LineTotals struct {
	BaseAmount       decimal.Decimal
	DiscountAmount   decimal.Decimal
	LineSubtotal     decimal.Decimal
	TaxAmount        decimal.Decimal
	LineTotalWithTax decimal.Decimal

	// TaxRate is the normalized rate the tax was computed with.
	TaxRate decimal.Decimal
	// OverallDiscountShare is the part of the header discount taxed away from
	// this line. It is only non-zero with the pre_tax discount stage.
	OverallDiscountShare decimal.Decimal
}

// InvoiceTotals is the derived totals breakdown of an invoice.
type InvoiceTotals struct {
	Lines           []LineTotals
	Jurisdiction    domain.Jurisdiction
	Subtotal        decimal.Decimal
	TotalDiscount   decimal.Decimal
	TotalTax        decimal.Decimal
	CGST            decimal.Decimal
	SGST            decimal.Decimal
	IGST            decimal.Decimal
	OverallDiscount decimal.Decimal
	GrandTotal      decimal.Decimal
}

// Config controls the behaviors that differ between invoice variants.
type Config struct {
	OverallDiscountStage  domain.DiscountStage
	ClampAbsoluteDiscount bool
}

// DefaultConfig applies the overall discount after tax and clamps absolute
// discounts to the line's base amount.
func DefaultConfig() Config {
	return Config{
		OverallDiscountStage:  domain.DiscountStagePostTax,
		ClampAbsoluteDiscount: true,
	}
}

// Engine computes invoice totals. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine for cfg. An empty stage means post_tax.
func NewEngine(cfg Config) *Engine {
	if cfg.OverallDiscountStage != domain.DiscountStagePreTax {
		cfg.OverallDiscountStage = domain.DiscountStagePostTax
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

var defaultEngine = NewEngine(DefaultConfig())

// ComputeLineTotal computes one line with the default configuration.
func ComputeLineTotal(item LineItem, mode domain.DiscountMode) LineTotals {
	return defaultEngine.LineTotal(item, mode)
}

// ComputeInvoiceTotals computes an invoice with the default configuration.
func ComputeInvoiceTotals(items []LineItem, j domain.Jurisdiction, overallDiscount decimal.Decimal, mode domain.DiscountMode) InvoiceTotals {
	return defaultEngine.InvoiceTotals(items, j, overallDiscount, mode)
}

// LineTotal computes the breakdown of a single item. It depends on no other
// item. Inputs are normalized instead of rejected: a zero quantity means the
// quantity was left out and bills one unit, while a negative quantity, like
// any other negative amount, counts as 0 and bills nothing. An unknown mode
// applies no discount.
func (e *Engine) LineTotal(item LineItem, mode domain.DiscountMode) LineTotals {
	qty := normalizeQuantity(item.Quantity)
	price := nonNegative(item.UnitPrice)
	discount := nonNegative(item.Discount)
	rate := nonNegative(item.TaxRate)

	base := qty.Mul(price)

	discountAmount := decimal.Zero
	switch mode {
	case domain.DiscountModePercent:
		discountAmount = base.Mul(decimal.Min(discount, hundred)).Div(hundred)
	case domain.DiscountModeAbsolute:
		discountAmount = discount
		if e.cfg.ClampAbsoluteDiscount && discountAmount.GreaterThan(base) {
			discountAmount = base
		}
	}

	after := base.Sub(discountAmount)
	tax := after.Mul(rate).Div(hundred)

	return LineTotals{
		BaseAmount:       base,
		DiscountAmount:   discountAmount,
		LineSubtotal:     after,
		TaxAmount:        tax,
		LineTotalWithTax: after.Add(tax),
		TaxRate:          rate,
	}
}

// InvoiceTotals aggregates the items and splits tax by jurisdiction.
// GrandTotal may be negative when the overall discount exceeds the rest of
// the invoice; callers reject that.
func (e *Engine) InvoiceTotals(items []LineItem, j domain.Jurisdiction, overallDiscount decimal.Decimal, mode domain.DiscountMode) InvoiceTotals {
	overall := nonNegative(overallDiscount)

	lines := make([]LineTotals, len(items))
	for i := range items {
		lines[i] = e.LineTotal(items[i], mode)
	}

	subtotal := decimal.Zero
	totalDiscount := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineSubtotal)
		totalDiscount = totalDiscount.Add(l.DiscountAmount)
	}

	if e.cfg.OverallDiscountStage == domain.DiscountStagePreTax {
		apportion(lines, overall, subtotal)
	}

	totalTax := decimal.Zero
	for _, l := range lines {
		totalTax = totalTax.Add(l.TaxAmount)
	}

	t := InvoiceTotals{
		Lines:           lines,
		Jurisdiction:    normalizeJurisdiction(j),
		Subtotal:        subtotal,
		TotalDiscount:   totalDiscount,
		TotalTax:        totalTax,
		OverallDiscount: overall,
		GrandTotal:      subtotal.Add(totalTax).Sub(overall),
	}
	t.CGST, t.SGST, t.IGST = SplitTax(totalTax, t.Jurisdiction)
	return t
}

// SplitTax returns (cgst, sgst, igst) for totalTax. The split is always
// binary: CGST and SGST halves for intra-state, IGST for inter-state.
func SplitTax(totalTax decimal.Decimal, j domain.Jurisdiction) (cgst, sgst, igst decimal.Decimal) {
	if j == domain.JurisdictionInter {
		return decimal.Zero, decimal.Zero, totalTax
	}
	half := totalTax.Div(two)
	return half, half, decimal.Zero
}

// apportion spreads the overall discount over the lines in proportion to
// their subtotal and recomputes each line's tax on the reduced amount.
// The last weighted line absorbs the remainder so the shares sum exactly.
func apportion(lines []LineTotals, overall, subtotal decimal.Decimal) {
	if !overall.IsPositive() || !subtotal.IsPositive() {
		return
	}
	allocatable := decimal.Min(overall, subtotal)

	last := -1
	for i, l := range lines {
		if l.LineSubtotal.IsPositive() {
			last = i
		}
	}

	allocated := decimal.Zero
	for i := range lines {
		l := &lines[i]
		if !l.LineSubtotal.IsPositive() {
			continue
		}
		var share decimal.Decimal
		if i == last {
			share = allocatable.Sub(allocated)
		} else {
			share = allocatable.Mul(l.LineSubtotal).Div(subtotal)
		}
		share = decimal.Min(share, l.LineSubtotal)
		allocated = allocated.Add(share)

		l.OverallDiscountShare = share
		l.TaxAmount = l.LineSubtotal.Sub(share).Mul(l.TaxRate).Div(hundred)
		l.LineTotalWithTax = l.LineSubtotal.Add(l.TaxAmount)
	}
}

// Rounded returns a copy rounded to places decimal digits, half away from
// zero. Line amounts are rounded first and the aggregates are re-summed from
// them, so lineSubtotal + tax = lineTotalWithTax and cgst = sgst still hold.
// Each half of the tax is rounded on its own, so when the total tax ends in an
// odd paisa cgst + sgst is one paisa above totalTax.
func (t InvoiceTotals) Rounded(places int32) InvoiceTotals {
	out := InvoiceTotals{
		Lines:           make([]LineTotals, len(t.Lines)),
		Jurisdiction:    t.Jurisdiction,
		Subtotal:        decimal.Zero,
		TotalDiscount:   decimal.Zero,
		TotalTax:        decimal.Zero,
		OverallDiscount: t.OverallDiscount.Round(places),
	}
	for i, l := range t.Lines {
		r := LineTotals{
			BaseAmount:           l.BaseAmount.Round(places),
			DiscountAmount:       l.DiscountAmount.Round(places),
			LineSubtotal:         l.LineSubtotal.Round(places),
			TaxAmount:            l.TaxAmount.Round(places),
			TaxRate:              l.TaxRate,
			OverallDiscountShare: l.OverallDiscountShare.Round(places),
		}
		r.LineTotalWithTax = r.LineSubtotal.Add(r.TaxAmount)
		out.Lines[i] = r

		out.Subtotal = out.Subtotal.Add(r.LineSubtotal)
		out.TotalDiscount = out.TotalDiscount.Add(r.DiscountAmount)
		out.TotalTax = out.TotalTax.Add(r.TaxAmount)
	}

	out.CGST, out.SGST, out.IGST = SplitTax(out.TotalTax, out.Jurisdiction)
	out.CGST = out.CGST.Round(places)
	out.SGST = out.SGST.Round(places)
	out.GrandTotal = out.Subtotal.Add(out.TotalTax).Sub(out.OverallDiscount)
	return out
}

// normalizeQuantity treats zero as absent (one unit) and clamps negatives to 0.
func normalizeQuantity(q decimal.Decimal) decimal.Decimal {
	if q.IsZero() {
		return decimal.NewFromInt(1)
	}
	return nonNegative(q)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func normalizeJurisdiction(j domain.Jurisdiction) domain.Jurisdiction {
	if j == domain.JurisdictionInter {
		return domain.JurisdictionInter
	}
	return domain.JurisdictionIntra
}
