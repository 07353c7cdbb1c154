package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/totals"
	"gstbill/internal/validator"
)

func violations(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected *domain.ValidationError, got %v", err)
	out := make(map[string]string, len(ve.Violations))
	for _, v := range ve.Violations {
		out[v.Field] = v.Message
	}
	return out
}

func validBusiness() *domain.Business {
	return &domain.Business{
		Name:      "Acme Traders",
		Address:   "12 MG Road, Bengaluru",
		StateCode: "29",
		Phone:     "9876543210",
		Email:     "accounts@acme.in",
		GSTIN:     "29ABCDE1234F1Z5",
	}
}

func TestValidateBusiness(t *testing.T) {
	t.Run("pass", func(t *testing.T) {
		assert.NoError(t, validator.ValidateBusiness(validBusiness()))
	})

	t.Run("pass_without_gstin", func(t *testing.T) {
		b := validBusiness()
		b.GSTIN = ""
		assert.NoError(t, validator.ValidateBusiness(b))
	})

	t.Run("fail_missing_fields", func(t *testing.T) {
		v := violations(t, validator.ValidateBusiness(&domain.Business{}))
		assert.Contains(t, v, "name")
		assert.Contains(t, v, "address")
		assert.Contains(t, v, "state_code")
		assert.Contains(t, v, "phone")
	})

	t.Run("fail_formats", func(t *testing.T) {
		b := validBusiness()
		b.Phone = "12345"
		b.StateCode = "KA"
		b.Email = "not-an-email"
		b.GSTIN = "29abcde1234f1z5"
		v := violations(t, validator.ValidateBusiness(b))
		assert.Contains(t, v, "phone")
		assert.Contains(t, v, "state_code")
		assert.Contains(t, v, "email")
		assert.Contains(t, v, "gstin")
	})

	t.Run("fail_gstin_state_mismatch", func(t *testing.T) {
		b := validBusiness()
		b.GSTIN = "27ABCDE1234F1Z5"
		v := violations(t, validator.ValidateBusiness(b))
		assert.Contains(t, v["gstin"], "27")
		assert.Contains(t, v["gstin"], "29")
	})

	t.Run("violations_carry_rule_key", func(t *testing.T) {
		var ve *domain.ValidationError
		require.ErrorAs(t, validator.ValidateBusiness(&domain.Business{Name: "x", Address: "y", StateCode: "29"}), &ve)
		require.Len(t, ve.Violations, 1)
		assert.Equal(t, "business.phone", ve.Violations[0].Rule)
	})
}

func TestValidateCustomer(t *testing.T) {
	t.Run("only_name_required", func(t *testing.T) {
		assert.NoError(t, validator.ValidateCustomer(&domain.Customer{Name: "Ravi"}))
	})

	t.Run("fail_blank_name", func(t *testing.T) {
		v := violations(t, validator.ValidateCustomer(&domain.Customer{Name: "   "}))
		assert.Contains(t, v, "name")
	})

	t.Run("fail_gstin_state", func(t *testing.T) {
		c := &domain.Customer{Name: "Ravi", StateCode: "07", GSTIN: "29ABCDE1234F1Z5"}
		v := violations(t, validator.ValidateCustomer(c))
		assert.Contains(t, v, "gstin")
	})

	t.Run("fail_phone", func(t *testing.T) {
		v := violations(t, validator.ValidateCustomer(&domain.Customer{Name: "Ravi", Phone: "98765432101"}))
		assert.Contains(t, v, "phone")
	})
}

func validInvoice() *domain.Invoice {
	return &domain.Invoice{
		CustomerID:   uuid.New(),
		InvoiceDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Jurisdiction: domain.JurisdictionIntra,
		DiscountMode: domain.DiscountModeAbsolute,
		Items: []domain.InvoiceItem{
			{Name: "Steel rod", HSNCode: "7214", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(1500), TaxRate: decimal.NewFromInt(18)},
		},
	}
}

func TestValidateInvoice(t *testing.T) {
	t.Run("pass", func(t *testing.T) {
		assert.NoError(t, validator.ValidateInvoice(validInvoice()))
	})

	t.Run("fail_no_customer", func(t *testing.T) {
		inv := validInvoice()
		inv.CustomerID = uuid.Nil
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Equal(t, "a customer must be selected", v["customer_id"])
	})

	t.Run("fail_no_items", func(t *testing.T) {
		inv := validInvoice()
		inv.Items = nil
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Contains(t, v, "items")
	})

	t.Run("fail_item_fields", func(t *testing.T) {
		inv := validInvoice()
		inv.Items = append(inv.Items, domain.InvoiceItem{
			Name:      "",
			Quantity:  decimal.Zero,
			UnitPrice: decimal.NewFromInt(-1),
			Discount:  decimal.NewFromInt(-5),
			TaxRate:   decimal.NewFromInt(120),
			HSNCode:   "12",
		})
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Contains(t, v, "items[1].name")
		assert.Contains(t, v, "items[1].quantity")
		assert.Contains(t, v, "items[1].unit_price")
		assert.Contains(t, v, "items[1].discount")
		assert.Contains(t, v, "items[1].tax_rate")
		assert.Contains(t, v, "items[1].hsn_code")
		assert.NotContains(t, v, "items[0].name")
	})

	t.Run("fail_percent_over_hundred", func(t *testing.T) {
		inv := validInvoice()
		inv.DiscountMode = domain.DiscountModePercent
		inv.Items[0].Discount = decimal.NewFromInt(101)
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Contains(t, v, "items[0].discount")
	})

	t.Run("absolute_discount_may_exceed_hundred", func(t *testing.T) {
		inv := validInvoice()
		inv.Items[0].Discount = decimal.NewFromInt(500)
		assert.NoError(t, validator.ValidateInvoice(inv))
	})

	t.Run("fail_modes", func(t *testing.T) {
		inv := validInvoice()
		inv.DiscountMode = "FLAT"
		inv.Jurisdiction = "EXPORT"
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Contains(t, v, "discount_mode")
		assert.Contains(t, v, "jurisdiction")
	})

	t.Run("fail_due_before_invoice_date", func(t *testing.T) {
		inv := validInvoice()
		due := inv.InvoiceDate.AddDate(0, 0, -1)
		inv.DueDate = &due
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Contains(t, v, "due_date")
	})

	t.Run("fail_excess_decimal_places", func(t *testing.T) {
		inv := validInvoice()
		inv.OverallDiscount = decimal.RequireFromString("1.005")
		inv.Items[0].Quantity = decimal.RequireFromString("1.2345")
		inv.Items[0].UnitPrice = decimal.RequireFromString("33.335")
		inv.Items[0].Discount = decimal.RequireFromString("0.125")
		inv.Items[0].TaxRate = decimal.RequireFromString("18.005")
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Equal(t, "must have at most 2 decimal places", v["overall_discount"])
		assert.Equal(t, "must have at most 3 decimal places", v["items[0].quantity"])
		assert.Equal(t, "must have at most 2 decimal places", v["items[0].unit_price"])
		assert.Equal(t, "must have at most 2 decimal places", v["items[0].discount"])
		assert.Equal(t, "must have at most 2 decimal places", v["items[0].tax_rate"])
	})

	t.Run("trailing_zeros_within_scale", func(t *testing.T) {
		inv := validInvoice()
		inv.Items[0].Quantity = decimal.RequireFromString("2.500")
		inv.Items[0].UnitPrice = decimal.RequireFromString("33.3400")
		inv.Items[0].TaxRate = decimal.RequireFromString("18.000")
		assert.NoError(t, validator.ValidateInvoice(inv))
	})

	t.Run("fail_negative_overall_discount", func(t *testing.T) {
		inv := validInvoice()
		inv.OverallDiscount = decimal.NewFromInt(-1)
		v := violations(t, validator.ValidateInvoice(inv))
		assert.Contains(t, v, "overall_discount")
	})
}

func TestValidateTotals(t *testing.T) {
	items := []totals.LineItem{
		{Name: "a", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(1500), TaxRate: decimal.NewFromInt(18)},
		{Name: "b", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5000), Discount: decimal.NewFromInt(500), TaxRate: decimal.NewFromInt(18)},
	}
	computed := totals.ComputeInvoiceTotals(items, domain.JurisdictionIntra, decimal.Zero, domain.DiscountModeAbsolute).Rounded(2)

	t.Run("pass_without_expected", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTotals(computed, nil))
	})

	t.Run("pass_matching_expected", func(t *testing.T) {
		want := decimal.RequireFromString("23010.01")
		assert.NoError(t, validator.ValidateTotals(computed, &want))
	})

	t.Run("fail_mismatch", func(t *testing.T) {
		want := decimal.RequireFromString("23100")
		v := violations(t, validator.ValidateTotals(computed, &want))
		assert.Contains(t, v["expected_grand_total"], "23010.00")
	})

	t.Run("fail_negative_grand_total", func(t *testing.T) {
		neg := totals.ComputeInvoiceTotals(items, domain.JurisdictionIntra, decimal.NewFromInt(30000), domain.DiscountModeAbsolute).Rounded(2)
		v := violations(t, validator.ValidateTotals(neg, nil))
		assert.Contains(t, v, "overall_discount")
	})
}

func TestValidatePayment(t *testing.T) {
	ok := &domain.Payment{Amount: decimal.NewFromInt(100), Method: domain.PaymentMethodUPI, PaymentDate: time.Now()}
	assert.NoError(t, validator.ValidatePayment(ok))

	v := violations(t, validator.ValidatePayment(&domain.Payment{Method: "BARTER"}))
	assert.Contains(t, v, "amount")
	assert.Contains(t, v, "method")
	assert.Contains(t, v, "payment_date")

	for _, amount := range []string{"9.996", "0.004"} {
		p := &domain.Payment{Amount: decimal.RequireFromString(amount), Method: domain.PaymentMethodUPI, PaymentDate: time.Now()}
		v := violations(t, validator.ValidatePayment(p))
		assert.Equal(t, "must have at most 2 decimal places", v["amount"], amount)
	}
}

func TestValidateTemplate(t *testing.T) {
	assert.NoError(t, validator.ValidateTemplate(&domain.InvoiceTemplate{Name: "Minimal"}))

	tmpl := &domain.InvoiceTemplate{Name: "", Config: domain.TemplateConfig{AccentColor: "blue"}}
	v := violations(t, validator.ValidateTemplate(tmpl))
	assert.Contains(t, v, "name")
	assert.Contains(t, v, "config.accent_color")
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2026-03-05", "05-03-2026", "05/03/2026", "5 Mar 2026", " 2026-03-05T18:30:00+05:30 "} {
		got, err := validator.ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s -> %s", in, got)
	}
	_, err := validator.ParseDate("March fifth")
	assert.Error(t, err)
}

func TestValidColorHex(t *testing.T) {
	assert.True(t, validator.ValidColorHex("#1A2b3C"))
	assert.False(t, validator.ValidColorHex("1A2B3C"))
	assert.False(t, validator.ValidColorHex("#FFF"))
}
