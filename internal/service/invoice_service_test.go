package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/service"
	"gstbill/internal/totals"
	"gstbill/mocks"
)

type invoiceDeps struct {
	invoices   *mocks.MockInvoiceRepo
	customers  *mocks.MockCustomerRepo
	businesses *mocks.MockBusinessRepo
	payments   *mocks.MockPaymentRepo
	uow        *mocks.FakeUnitOfWork
	templates  *mocks.MockTemplateService
	assets     *mocks.MockAssetService
	email      *mocks.MockEmailSender
}

func newInvoiceService(cfg totals.Config) (service.InvoiceService, *invoiceDeps) {
	d := &invoiceDeps{
		invoices:   new(mocks.MockInvoiceRepo),
		customers:  new(mocks.MockCustomerRepo),
		businesses: new(mocks.MockBusinessRepo),
		payments:   new(mocks.MockPaymentRepo),
		templates:  new(mocks.MockTemplateService),
		assets:     new(mocks.MockAssetService),
		email:      new(mocks.MockEmailSender),
	}
	d.uow = &mocks.FakeUnitOfWork{Repos: port.TxRepositories{Invoices: d.invoices, Payments: d.payments}}
	svc := service.NewInvoiceService(
		d.invoices, d.customers, d.businesses, d.uow, d.templates, d.assets, d.email,
		totals.NewEngine(cfg),
		service.InvoiceOptions{
			NumberPrefix:        "INV",
			DefaultDiscountMode: domain.DiscountModeAbsolute,
			RoundingPlaces:      2,
			FrontendURL:         "https://app.gstbill.test/",
		},
		zap.NewNop(),
	)
	return svc, d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, got.Equal(dec(want)), "%s: want %s, got %s", field, want, got.String())
}

func testBusiness(id uuid.UUID) *domain.Business {
	return &domain.Business{ID: id, Name: "Acme Traders", Address: "MG Road", StateCode: "27", Phone: "9876543210"}
}

func testCustomer(businessID, id uuid.UUID, state string) *domain.Customer {
	return &domain.Customer{ID: id, BusinessID: businessID, Name: "Ravi Kumar", Email: "ravi@example.com", StateCode: state}
}

// sampleDraft holds the two reference lines: 10 x 1500 and 1 x 5000 less 500, both at 18%.
func sampleDraft(customerID uuid.UUID) service.InvoiceDraft {
	return service.InvoiceDraft{
		CustomerID:   customerID,
		InvoiceDate:  "2025-01-15",
		DiscountMode: domain.DiscountModeAbsolute,
		Items: []service.InvoiceItemInput{
			{Name: "Steel rod", HSNCode: "7214", Quantity: dec("10"), UnitPrice: dec("1500"), TaxRate: dec("18")},
			{Name: "Installation", Quantity: dec("1"), UnitPrice: dec("5000"), Discount: dec("500"), TaxRate: dec("18")},
		},
	}
}

func violationFields(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected a validation error, got %v", err)
	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestInvoiceService_Create(t *testing.T) {
	bizID, custID := uuid.New(), uuid.New()

	t.Run("intra_state_from_matching_state_codes", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(false, nil)
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		inv, err := svc.Create(context.Background(), bizID, sampleDraft(custID))
		require.NoError(t, err)

		assert.Regexp(t, `^INV-\d{14}$`, inv.InvoiceNumber)
		assert.Equal(t, domain.JurisdictionIntra, inv.Jurisdiction)
		assertDec(t, "19500", inv.Subtotal, "subtotal")
		assertDec(t, "500", inv.TotalDiscount, "total discount")
		assertDec(t, "3510", inv.TotalTax, "total tax")
		assertDec(t, "1755", inv.CGST, "cgst")
		assertDec(t, "1755", inv.SGST, "sgst")
		assertDec(t, "0", inv.IGST, "igst")
		assertDec(t, "23010", inv.GrandTotal, "grand total")
		assertDec(t, "0", inv.PaidAmount, "paid")
		assertDec(t, "23010", inv.DueAmount, "due")
		assert.Equal(t, domain.PaymentStatusDue, inv.Status)

		require.Len(t, inv.Items, 2)
		assertDec(t, "17700", inv.Items[0].LineTotalWithTax, "line 1 total")
		assertDec(t, "500", inv.Items[1].DiscountAmount, "line 2 discount")
		assertDec(t, "5310", inv.Items[1].LineTotalWithTax, "line 2 total")
		d.invoices.AssertExpectations(t)
	})

	t.Run("inter_state_from_different_state_codes", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "07"), nil)
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(false, nil)
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		inv, err := svc.Create(context.Background(), bizID, sampleDraft(custID))
		require.NoError(t, err)
		assert.Equal(t, domain.JurisdictionInter, inv.Jurisdiction)
		assertDec(t, "3510", inv.IGST, "igst")
		assertDec(t, "0", inv.CGST, "cgst")
		assertDec(t, "23010", inv.GrandTotal, "grand total")
	})

	t.Run("customer_without_state_is_intra", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, ""), nil)
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(false, nil)
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		inv, err := svc.Create(context.Background(), bizID, sampleDraft(custID))
		require.NoError(t, err)
		assert.Equal(t, domain.JurisdictionIntra, inv.Jurisdiction)
	})

	t.Run("explicit_jurisdiction_wins", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(false, nil)
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		draft := sampleDraft(custID)
		draft.Jurisdiction = "inter"
		inv, err := svc.Create(context.Background(), bizID, draft)
		require.NoError(t, err)
		assert.Equal(t, domain.JurisdictionInter, inv.Jurisdiction)
	})

	t.Run("rejects_missing_customer_and_items", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)

		_, err := svc.Create(context.Background(), bizID, service.InvoiceDraft{})
		fields := violationFields(t, err)
		assert.Contains(t, fields, "customer_id")
		assert.Contains(t, fields, "items")
		d.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects_unknown_customer", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(nil, domain.ErrCustomerNotFound)

		_, err := svc.Create(context.Background(), bizID, sampleDraft(custID))
		assert.Equal(t, []string{"customer_id"}, violationFields(t, err))
	})

	t.Run("rejects_bad_items", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)

		draft := sampleDraft(custID)
		draft.Items[0].Name = "  "
		draft.Items[1].UnitPrice = decimal.Zero
		_, err := svc.Create(context.Background(), bizID, draft)
		fields := violationFields(t, err)
		assert.Contains(t, fields, "items[0].name")
		assert.Contains(t, fields, "items[1].unit_price")
	})

	t.Run("rejects_inputs_finer_than_stored_scale", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)

		draft := sampleDraft(custID)
		draft.Items[0].Quantity = dec("3.0005")
		draft.Items[0].UnitPrice = dec("33.335")
		draft.Items[0].TaxRate = dec("18.125")
		draft.Items[1].Discount = dec("500.005")
		draft.OverallDiscount = dec("0.001")
		_, err := svc.Create(context.Background(), bizID, draft)
		fields := violationFields(t, err)
		assert.ElementsMatch(t, []string{
			"overall_discount", "items[0].quantity", "items[0].unit_price", "items[0].tax_rate", "items[1].discount",
		}, fields)
		d.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects_negative_grand_total", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)

		draft := sampleDraft(custID)
		draft.OverallDiscount = dec("30000")
		_, err := svc.Create(context.Background(), bizID, draft)
		assert.Equal(t, []string{"overall_discount"}, violationFields(t, err))
	})

	t.Run("rejects_mismatched_expected_total", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)

		draft := sampleDraft(custID)
		expected := dec("23000")
		draft.ExpectedGrandTotal = &expected
		_, err := svc.Create(context.Background(), bizID, draft)
		assert.Equal(t, []string{"expected_grand_total"}, violationFields(t, err))
	})

	t.Run("accepts_expected_total_within_a_paisa", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(false, nil)
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		draft := sampleDraft(custID)
		expected := dec("23010.01")
		draft.ExpectedGrandTotal = &expected
		_, err := svc.Create(context.Background(), bizID, draft)
		require.NoError(t, err)
	})

	t.Run("suffixes_taken_number", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(true, nil).Once()
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(false, nil)
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		inv, err := svc.Create(context.Background(), bizID, sampleDraft(custID))
		require.NoError(t, err)
		assert.Regexp(t, `^INV-\d{14}-1$`, inv.InvoiceNumber)
	})

	t.Run("retries_on_concurrent_duplicate", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("NumberExists", mock.Anything, bizID, mock.AnythingOfType("string")).Return(false, nil)
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(domain.ErrDuplicateInvoiceNo).Once()
		d.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil).Once()

		_, err := svc.Create(context.Background(), bizID, sampleDraft(custID))
		require.NoError(t, err)
		d.invoices.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("business_not_found", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(nil, domain.ErrBusinessNotFound)

		_, err := svc.Create(context.Background(), bizID, sampleDraft(custID))
		assert.ErrorIs(t, err, domain.ErrBusinessNotFound)
	})
}

func TestInvoiceService_Preview(t *testing.T) {
	bizID, custID := uuid.New(), uuid.New()

	t.Run("computes_without_saving", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)

		draft := sampleDraft(custID)
		draft.OverallDiscount = dec("1010")
		p, err := svc.Preview(context.Background(), bizID, draft)
		require.NoError(t, err)

		assert.True(t, p.Valid)
		assert.Empty(t, p.Violations)
		require.Len(t, p.Totals.Lines, 2)
		assertDec(t, "15000", p.Totals.Lines[0].BaseAmount, "line 1 base")
		assertDec(t, "19500", p.Totals.Subtotal, "subtotal")
		assertDec(t, "1010", p.Totals.OverallDiscount, "overall discount")
		assertDec(t, "22000", p.Totals.GrandTotal, "grand total")
		d.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reports_problems_with_totals", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)

		draft := sampleDraft(uuid.Nil)
		draft.Items[0].Quantity = decimal.Zero
		p, err := svc.Preview(context.Background(), bizID, draft)
		require.NoError(t, err)

		assert.False(t, p.Valid)
		fields := make([]string, 0, len(p.Violations))
		for _, v := range p.Violations {
			fields = append(fields, v.Field)
		}
		assert.Contains(t, fields, "customer_id")
		assert.Contains(t, fields, "items[0].quantity")
		// A missing quantity still prices as one unit.
		assertDec(t, "1500", p.Totals.Lines[0].BaseAmount, "line 1 base")
	})

	t.Run("pre_tax_stage_reduces_tax", func(t *testing.T) {
		svc, d := newInvoiceService(totals.Config{OverallDiscountStage: domain.DiscountStagePreTax, ClampAbsoluteDiscount: true})
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)

		draft := sampleDraft(custID)
		draft.OverallDiscount = dec("1950")
		p, err := svc.Preview(context.Background(), bizID, draft)
		require.NoError(t, err)
		assertDec(t, "3159", p.Totals.TotalTax, "total tax")
		assertDec(t, "20709", p.Totals.GrandTotal, "grand total")
	})
}

func TestInvoiceService_Update(t *testing.T) {
	bizID, custID, invID := uuid.New(), uuid.New(), uuid.New()
	current := &domain.Invoice{ID: invID, BusinessID: bizID, InvoiceNumber: "INV-20250115103000", GrandTotal: dec("23010")}

	t.Run("keeps_recorded_payments", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(current, nil)
		d.payments.On("AmountsByInvoice", mock.Anything, invID).Return([]decimal.Decimal{dec("10000")}, nil)
		d.invoices.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		inv, err := svc.Update(context.Background(), bizID, invID, sampleDraft(custID))
		require.NoError(t, err)
		assert.Equal(t, invID, inv.ID)
		assert.Equal(t, "INV-20250115103000", inv.InvoiceNumber)
		assertDec(t, "10000", inv.PaidAmount, "paid")
		assertDec(t, "13010", inv.DueAmount, "due")
		assert.Equal(t, domain.PaymentStatusPartial, inv.Status)
		assert.Equal(t, 1, d.uow.Calls)
	})

	t.Run("rejects_total_below_paid", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(current, nil)
		d.payments.On("AmountsByInvoice", mock.Anything, invID).Return([]decimal.Decimal{dec("20000"), dec("3010")}, nil)

		draft := sampleDraft(custID)
		draft.Items = draft.Items[:1]
		_, err := svc.Update(context.Background(), bizID, invID, draft)
		assert.ErrorIs(t, err, domain.ErrInvoiceBelowPaid)
		d.invoices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invoice_not_found", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.invoices.On("GetForUpdate", mock.Anything, bizID, invID).Return(nil, domain.ErrInvoiceNotFound)

		_, err := svc.Update(context.Background(), bizID, invID, sampleDraft(custID))
		assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
	})
}

func TestInvoiceService_List_ClampsPage(t *testing.T) {
	bizID := uuid.New()
	svc, d := newInvoiceService(totals.DefaultConfig())
	d.invoices.On("List", mock.Anything, bizID, 0, 100).Return([]domain.Invoice{}, 0, nil)

	_, _, err := svc.List(context.Background(), bizID, -5, 500)
	require.NoError(t, err)
	d.invoices.AssertExpectations(t)
}

func TestInvoiceService_View(t *testing.T) {
	bizID, custID, invID := uuid.New(), uuid.New(), uuid.New()
	inv := &domain.Invoice{ID: invID, BusinessID: bizID, CustomerID: custID}

	cfg := domain.DefaultTemplateConfig()
	cfg.ShowSignature = false
	tmpl := &domain.EffectiveTemplate{Source: domain.TemplateSourceSystem, Name: "Classy", ColorHex: "#112233", Config: cfg}

	t.Run("filters_assets_by_template", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.invoices.On("GetByID", mock.Anything, bizID, invID).Return(inv, nil)
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.templates.On("Resolve", mock.Anything, bizID, (*uuid.UUID)(nil)).Return(tmpl, nil)
		d.assets.On("LatestURLs", mock.Anything, bizID).Return(map[domain.AssetType]string{
			domain.AssetTypeLogo:      "https://s3/logo.png",
			domain.AssetTypeSignature: "https://s3/sign.png",
		}, nil)

		view, err := svc.View(context.Background(), bizID, invID)
		require.NoError(t, err)
		assert.Equal(t, "Classy", view.Template.Name)
		assert.Equal(t, "Ravi Kumar", view.Customer.Name)
		assert.Equal(t, map[domain.AssetType]string{domain.AssetTypeLogo: "https://s3/logo.png"}, view.Assets)
	})

	t.Run("asset_failure_does_not_block_view", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.invoices.On("GetByID", mock.Anything, bizID, invID).Return(inv, nil)
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.templates.On("Resolve", mock.Anything, bizID, (*uuid.UUID)(nil)).Return(tmpl, nil)
		d.assets.On("LatestURLs", mock.Anything, bizID).Return(nil, errors.New("s3 down"))

		view, err := svc.View(context.Background(), bizID, invID)
		require.NoError(t, err)
		assert.Nil(t, view.Assets)
	})
}

func TestInvoiceService_SendByEmail(t *testing.T) {
	bizID, custID, invID := uuid.New(), uuid.New(), uuid.New()
	inv := &domain.Invoice{
		ID: invID, BusinessID: bizID, CustomerID: custID, InvoiceNumber: "INV-1",
		GrandTotal: dec("23010"), DueAmount: dec("13010"), Status: domain.PaymentStatusPartial,
	}

	t.Run("falls_back_to_customer_email", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.invoices.On("GetByID", mock.Anything, bizID, invID).Return(inv, nil)
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)
		d.email.On("SendInvoiceEmail", mock.Anything, mock.MatchedBy(func(e port.InvoiceEmail) bool {
			return e.ToEmail == "ravi@example.com" &&
				e.GrandTotal == "23010.00" &&
				e.DueAmount == "13010.00" &&
				e.ViewURL == "https://app.gstbill.test/invoices/"+invID.String()
		})).Return(nil)

		require.NoError(t, svc.SendByEmail(context.Background(), bizID, invID, service.SendInvoiceInput{}))
		d.email.AssertExpectations(t)
	})

	t.Run("no_recipient", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		noEmail := testCustomer(bizID, custID, "27")
		noEmail.Email = ""
		d.invoices.On("GetByID", mock.Anything, bizID, invID).Return(inv, nil)
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(noEmail, nil)

		err := svc.SendByEmail(context.Background(), bizID, invID, service.SendInvoiceInput{})
		assert.ErrorIs(t, err, domain.ErrNoRecipient)
		d.email.AssertNotCalled(t, "SendInvoiceEmail", mock.Anything, mock.Anything)
	})
}

func TestInvoiceService_Export(t *testing.T) {
	bizID, custID := uuid.New(), uuid.New()
	invoices := []domain.Invoice{{CustomerID: custID, InvoiceNumber: "INV-1", GrandTotal: dec("5310")}}

	t.Run("csv_with_bom", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.invoices.On("ListAll", mock.Anything, bizID).Return(invoices, nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil).Once()

		file, err := svc.Export(context.Background(), bizID, domain.ExportFormatCSV)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(file.Data, csvexport.BOM))
		assert.Contains(t, string(file.Data), "INV-1")
		assert.Contains(t, string(file.Data), "Ravi Kumar")
		assert.Regexp(t, `^Acme_Traders_invoices_\d{4}-\d{2}-\d{2}\.csv$`, file.Filename)
		assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	})

	t.Run("xlsx", func(t *testing.T) {
		svc, d := newInvoiceService(totals.DefaultConfig())
		d.businesses.On("GetByID", mock.Anything, bizID).Return(testBusiness(bizID), nil)
		d.invoices.On("ListAll", mock.Anything, bizID).Return(invoices, nil)
		d.customers.On("GetByID", mock.Anything, bizID, custID).Return(testCustomer(bizID, custID, "27"), nil)

		file, err := svc.Export(context.Background(), bizID, "XLSX")
		require.NoError(t, err)
		// XLSX is a zip container.
		assert.True(t, bytes.HasPrefix(file.Data, []byte("PK")))
		assert.Regexp(t, `\.xlsx$`, file.Filename)
	})

	t.Run("unsupported_format", func(t *testing.T) {
		svc, _ := newInvoiceService(totals.DefaultConfig())
		_, err := svc.Export(context.Background(), bizID, "pdf")
		assert.ErrorIs(t, err, domain.ErrUnsupportedExport)
	})
}
