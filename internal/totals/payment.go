package totals

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// PaidAmount sums the recorded payment amounts.
func PaidAmount(payments []decimal.Decimal) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p)
	}
	return paid
}

// DueAmount is grandTotal minus all recorded payments.
func DueAmount(grandTotal decimal.Decimal, payments []decimal.Decimal) decimal.Decimal {
	return grandTotal.Sub(PaidAmount(payments))
}

// DeriveStatus maps the paid amount against grandTotal onto the payment state
// machine: PAID once nothing is due, PARTIAL while something is paid, else DUE.
func DeriveStatus(grandTotal, paid decimal.Decimal) domain.PaymentStatus {
	due := grandTotal.Sub(paid)
	switch {
	case !due.IsPositive():
		return domain.PaymentStatusPaid
	case paid.IsPositive():
		return domain.PaymentStatusPartial
	default:
		return domain.PaymentStatusDue
	}
}

// Summarize recomputes paid, due and status for an invoice.
func Summarize(grandTotal decimal.Decimal, payments []decimal.Decimal) domain.PaymentSummary {
	paid := PaidAmount(payments)
	return domain.PaymentSummary{
		PaidAmount: paid,
		DueAmount:  grandTotal.Sub(paid),
		Status:     DeriveStatus(grandTotal, paid),
	}
}

// CheckPayment rejects a new payment that is not positive or that exceeds
// the amount currently due.
func CheckPayment(due, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrNonPositivePayment
	}
	if amount.GreaterThan(due) {
		return domain.ErrPaymentExceedsDue
	}
	return nil
}
