package validator

import (
	"gstbill/internal/domain"
)

var paymentRules = []rule[*domain.Payment]{
	{key: "payment.amount", check: func(p *domain.Payment) []domain.FieldViolation {
		if !p.Amount.IsPositive() {
			return violation("amount", "must be greater than zero")
		}
		return scaleCheck("amount", p.Amount, moneyPlaces)
	}},
	{key: "payment.method", check: func(p *domain.Payment) []domain.FieldViolation {
		if !domain.ValidPaymentMethods[p.Method] {
			return violation("method", "must be one of CASH, BANK, UPI, CARD, CHEQUE, OTHER")
		}
		return nil
	}},
	{key: "payment.date", check: func(p *domain.Payment) []domain.FieldViolation {
		if p.PaymentDate.IsZero() {
			return violation("payment_date", "is required")
		}
		return nil
	}},
}

// ValidatePayment checks a payment before it is applied to an invoice.
// The due-amount bound is checked against the locked invoice by the caller.
func ValidatePayment(p *domain.Payment) error {
	return run(p, paymentRules)
}
