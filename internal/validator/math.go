package validator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
	"gstbill/internal/totals"
)

// mathTolerance absorbs one paisa of rounding difference between a client
// computation and the server's.
var mathTolerance = decimal.RequireFromString("0.01")

func approxEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(mathTolerance)
}

// Column scales of the stored money and quantity inputs.
const (
	moneyPlaces    = 2
	quantityPlaces = 3
)

// scaleCheck rejects values with more decimal places than the column keeps,
// so the stored row matches the figures computed from it. Trailing zeros are
// ignored.
func scaleCheck(field string, d decimal.Decimal, places int32) []domain.FieldViolation {
	if d.Equal(d.Truncate(places)) {
		return nil
	}
	return violation(field, fmt.Sprintf("must have at most %d decimal places", places))
}

// ValidateTotals checks a computed, rounded snapshot. The grand total must not
// be negative, and when the client sent the grand total it displayed, the two
// must agree.
func ValidateTotals(t totals.InvoiceTotals, expectedGrandTotal *decimal.Decimal) error {
	var violations []domain.FieldViolation
	if t.GrandTotal.IsNegative() {
		violations = append(violations, domain.FieldViolation{
			Field:   "overall_discount",
			Message: fmt.Sprintf("discounts exceed the invoice value (grand total %s)", t.GrandTotal.StringFixed(2)),
		})
	}
	if expectedGrandTotal != nil && !approxEqual(*expectedGrandTotal, t.GrandTotal) {
		violations = append(violations, domain.FieldViolation{
			Field: "expected_grand_total",
			Message: fmt.Sprintf("submitted total %s does not match computed total %s",
				expectedGrandTotal.StringFixed(2), t.GrandTotal.StringFixed(2)),
		})
	}
	return domain.NewValidationError(violations)
}
