package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/totals"
	"gstbill/internal/validator"
	"gstbill/internal/xlsxexport"
)

const maxNumberAttempts = 50

// InvoiceItemInput is one line item as submitted by the client.
type InvoiceItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// InvoiceDraft is the invoice form. Jurisdiction is derived from the state
// codes when empty. ExpectedGrandTotal, when sent, must match the server's
// computation.
type InvoiceDraft struct {
	CustomerID         uuid.UUID           `json:"customer_id"`
	TemplateID         *uuid.UUID          `json:"template_id"`
	InvoiceDate        string              `json:"invoice_date"`
	DueDate            string              `json:"due_date"`
	Jurisdiction       domain.Jurisdiction `json:"jurisdiction"`
	DiscountMode       domain.DiscountMode `json:"discount_mode"`
	OverallDiscount    decimal.Decimal     `json:"overall_discount"`
	ExpectedGrandTotal *decimal.Decimal    `json:"expected_grand_total"`
	Notes              string              `json:"notes"`
	Items              []InvoiceItemInput  `json:"items"`
}

// LineTotalsView is the rounded breakdown of one line.
type LineTotalsView struct {
	BaseAmount           decimal.Decimal `json:"base_amount"`
	DiscountAmount       decimal.Decimal `json:"discount_amount"`
	LineSubtotal         decimal.Decimal `json:"line_subtotal"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	LineTotalWithTax     decimal.Decimal `json:"line_total_with_tax"`
	OverallDiscountShare decimal.Decimal `json:"overall_discount_share"`
}

// TotalsView is the rounded totals breakdown returned to clients.
type TotalsView struct {
	Lines           []LineTotalsView    `json:"lines"`
	Jurisdiction    domain.Jurisdiction `json:"jurisdiction"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	TotalDiscount   decimal.Decimal     `json:"total_discount"`
	TotalTax        decimal.Decimal     `json:"total_tax"`
	CGST            decimal.Decimal     `json:"cgst"`
	SGST            decimal.Decimal     `json:"sgst"`
	IGST            decimal.Decimal     `json:"igst"`
	OverallDiscount decimal.Decimal     `json:"overall_discount"`
	GrandTotal      decimal.Decimal     `json:"grand_total"`
}

// InvoicePreview is the result of computing a draft without saving it.
type InvoicePreview struct {
	Totals     TotalsView              `json:"totals"`
	Valid      bool                    `json:"valid"`
	Violations []domain.FieldViolation `json:"violations,omitempty"`
}

// SendInvoiceInput addresses an invoice email. An empty To falls back to the
// customer's email.
type SendInvoiceInput struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// ExportFile is a rendered invoice register.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// InvoiceOptions holds the invoice settings taken from configuration.
type InvoiceOptions struct {
	NumberPrefix        string
	DefaultDiscountMode domain.DiscountMode
	RoundingPlaces      int32
	FrontendURL         string
}

// InvoiceService defines the invoice lifecycle contract.
type InvoiceService interface {
	Preview(ctx context.Context, businessID uuid.UUID, draft InvoiceDraft) (*InvoicePreview, error)
	Create(ctx context.Context, businessID uuid.UUID, draft InvoiceDraft) (*domain.Invoice, error)
	Update(ctx context.Context, businessID, invoiceID uuid.UUID, draft InvoiceDraft) (*domain.Invoice, error)
	GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error
	View(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.InvoiceView, error)
	SendByEmail(ctx context.Context, businessID, invoiceID uuid.UUID, input SendInvoiceInput) error
	Export(ctx context.Context, businessID uuid.UUID, format domain.ExportFormat) (*ExportFile, error)
}

type invoiceService struct {
	invoices   port.InvoiceRepository
	customers  port.CustomerRepository
	businesses port.BusinessRepository
	uow        port.UnitOfWork
	templates  TemplateService
	assets     AssetService
	email      port.EmailSender
	engine     *totals.Engine
	opts       InvoiceOptions
	log        *zap.Logger
	now        func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoices port.InvoiceRepository,
	customers port.CustomerRepository,
	businesses port.BusinessRepository,
	uow port.UnitOfWork,
	templates TemplateService,
	assets AssetService,
	email port.EmailSender,
	engine *totals.Engine,
	opts InvoiceOptions,
	log *zap.Logger,
) InvoiceService {
	if opts.NumberPrefix == "" {
		opts.NumberPrefix = "INV"
	}
	if !opts.DefaultDiscountMode.Valid() {
		opts.DefaultDiscountMode = domain.DiscountModeAbsolute
	}
	return &invoiceService{
		invoices:   invoices,
		customers:  customers,
		businesses: businesses,
		uow:        uow,
		templates:  templates,
		assets:     assets,
		email:      email,
		engine:     engine,
		opts:       opts,
		log:        log,
		now:        timeNow,
	}
}

// evaluation is a draft turned into an invoice with its rounded totals.
type evaluation struct {
	invoice    *domain.Invoice
	totals     totals.InvoiceTotals
	violations []domain.FieldViolation
}

func (s *invoiceService) evaluate(ctx context.Context, businessID uuid.UUID, draft InvoiceDraft) (*evaluation, error) {
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	var violations []domain.FieldViolation

	inv := &domain.Invoice{
		BusinessID:      businessID,
		CustomerID:      draft.CustomerID,
		TemplateID:      draft.TemplateID,
		DiscountMode:    domain.DiscountMode(strings.ToUpper(strings.TrimSpace(string(draft.DiscountMode)))),
		Jurisdiction:    domain.Jurisdiction(strings.ToUpper(strings.TrimSpace(string(draft.Jurisdiction)))),
		OverallDiscount: draft.OverallDiscount,
		Notes:           strings.TrimSpace(draft.Notes),
		Items:           make([]domain.InvoiceItem, len(draft.Items)),
	}
	if inv.DiscountMode == "" {
		inv.DiscountMode = s.opts.DefaultDiscountMode
	}

	inv.InvoiceDate = today(s.now())
	if strings.TrimSpace(draft.InvoiceDate) != "" {
		d, err := validator.ParseDate(draft.InvoiceDate)
		if err != nil {
			violations = append(violations, domain.FieldViolation{Field: "invoice_date", Message: "must be a valid date"})
		} else {
			inv.InvoiceDate = d
		}
	}
	if strings.TrimSpace(draft.DueDate) != "" {
		d, err := validator.ParseDate(draft.DueDate)
		if err != nil {
			violations = append(violations, domain.FieldViolation{Field: "due_date", Message: "must be a valid date"})
		} else {
			inv.DueDate = &d
		}
	}

	var customer *domain.Customer
	if draft.CustomerID != uuid.Nil {
		customer, err = s.customers.GetByID(ctx, businessID, draft.CustomerID)
		if errors.Is(err, domain.ErrCustomerNotFound) {
			violations = append(violations, domain.FieldViolation{Field: "customer_id", Message: "customer not found"})
		} else if err != nil {
			return nil, err
		}
	}
	if inv.Jurisdiction == "" {
		inv.Jurisdiction = deriveJurisdiction(business, customer)
	}

	lines := make([]totals.LineItem, len(draft.Items))
	for i, in := range draft.Items {
		inv.Items[i] = domain.InvoiceItem{
			Name:        strings.TrimSpace(in.Name),
			Description: strings.TrimSpace(in.Description),
			HSNCode:     strings.TrimSpace(in.HSNCode),
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Discount:    in.Discount,
			TaxRate:     in.TaxRate,
		}
		lines[i] = totals.LineItem{
			Name:        inv.Items[i].Name,
			Description: inv.Items[i].Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Discount:    in.Discount,
			TaxRate:     in.TaxRate,
		}
	}

	violations = appendViolations(violations, validator.ValidateInvoice(inv))

	t := s.engine.InvoiceTotals(lines, inv.Jurisdiction, inv.OverallDiscount, inv.DiscountMode).
		Rounded(s.opts.RoundingPlaces)
	violations = appendViolations(violations, validator.ValidateTotals(t, draft.ExpectedGrandTotal))

	applyTotals(inv, t)
	return &evaluation{invoice: inv, totals: t, violations: violations}, nil
}

func (s *invoiceService) Preview(ctx context.Context, businessID uuid.UUID, draft InvoiceDraft) (*InvoicePreview, error) {
	ev, err := s.evaluate(ctx, businessID, draft)
	if err != nil {
		return nil, err
	}
	return &InvoicePreview{
		Totals:     newTotalsView(ev.totals),
		Valid:      len(ev.violations) == 0,
		Violations: ev.violations,
	}, nil
}

func (s *invoiceService) Create(ctx context.Context, businessID uuid.UUID, draft InvoiceDraft) (*domain.Invoice, error) {
	ev, err := s.evaluate(ctx, businessID, draft)
	if err != nil {
		return nil, err
	}
	if err := domain.NewValidationError(ev.violations); err != nil {
		return nil, err
	}

	inv := ev.invoice
	summary := totals.Summarize(inv.GrandTotal, nil)
	inv.PaidAmount = summary.PaidAmount
	inv.DueAmount = summary.DueAmount
	inv.Status = summary.Status

	// A concurrent create can take the number between the check and the insert.
	for attempt := 0; attempt < 3; attempt++ {
		inv.InvoiceNumber, err = s.nextNumber(ctx, businessID)
		if err != nil {
			return nil, err
		}
		err = s.invoices.Create(ctx, inv)
		if !errors.Is(err, domain.ErrDuplicateInvoiceNo) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("business_id", businessID.String()),
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.String("grand_total", inv.GrandTotal.StringFixed(2)),
	)
	return inv, nil
}

// nextNumber returns PREFIX-yyyyMMddHHmmss, suffixed -1, -2, ... when taken.
func (s *invoiceService) nextNumber(ctx context.Context, businessID uuid.UUID) (string, error) {
	base := fmt.Sprintf("%s-%s", s.opts.NumberPrefix, s.now().Format("20060102150405"))
	candidate := base
	for n := 1; n <= maxNumberAttempts; n++ {
		exists, err := s.invoices.NumberExists(ctx, businessID, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return "", domain.ErrDuplicateInvoiceNo
}

func (s *invoiceService) Update(ctx context.Context, businessID, invoiceID uuid.UUID, draft InvoiceDraft) (*domain.Invoice, error) {
	ev, err := s.evaluate(ctx, businessID, draft)
	if err != nil {
		return nil, err
	}
	if err := domain.NewValidationError(ev.violations); err != nil {
		return nil, err
	}
	inv := ev.invoice

	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos port.TxRepositories) error {
		current, err := repos.Invoices.GetForUpdate(ctx, businessID, invoiceID)
		if err != nil {
			return err
		}
		amounts, err := repos.Payments.AmountsByInvoice(ctx, invoiceID)
		if err != nil {
			return err
		}
		summary := totals.Summarize(inv.GrandTotal, amounts)
		if inv.GrandTotal.LessThan(summary.PaidAmount) {
			return domain.ErrInvoiceBelowPaid
		}

		inv.ID = current.ID
		inv.InvoiceNumber = current.InvoiceNumber
		inv.CreatedAt = current.CreatedAt
		inv.PaidAmount = summary.PaidAmount
		inv.DueAmount = summary.DueAmount
		inv.Status = summary.Status
		return repos.Invoices.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice updated",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("status", string(inv.Status)),
	)
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, businessID, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	offset, limit = clampPage(offset, limit)
	return s.invoices.List(ctx, businessID, offset, limit)
}

func (s *invoiceService) Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error {
	if err := s.invoices.Delete(ctx, businessID, invoiceID); err != nil {
		return err
	}
	s.log.Info("invoice deleted", zap.String("invoice_id", invoiceID.String()))
	return nil
}

func (s *invoiceService) View(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.InvoiceView, error) {
	inv, err := s.invoices.GetByID(ctx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(ctx, businessID, inv.CustomerID)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.templates.Resolve(ctx, businessID, inv.TemplateID)
	if err != nil {
		return nil, err
	}

	view := &domain.InvoiceView{
		Invoice:  inv,
		Customer: customer,
		Business: business,
		Template: *tmpl,
	}

	urls, err := s.assets.LatestURLs(ctx, businessID)
	if err != nil {
		s.log.Warn("invoice view without assets", zap.String("invoice_id", invoiceID.String()), zap.Error(err))
		return view, nil
	}
	view.Assets = visibleAssets(urls, tmpl.Config)
	return view, nil
}

func visibleAssets(urls map[domain.AssetType]string, cfg domain.TemplateConfig) map[domain.AssetType]string {
	show := map[domain.AssetType]bool{
		domain.AssetTypeLogo:      cfg.ShowLogo,
		domain.AssetTypeSignature: cfg.ShowSignature,
		domain.AssetTypeQR:        cfg.ShowQRCode,
	}
	out := make(map[domain.AssetType]string)
	for t, url := range urls {
		if show[t] {
			out[t] = url
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s *invoiceService) SendByEmail(ctx context.Context, businessID, invoiceID uuid.UUID, input SendInvoiceInput) error {
	inv, err := s.invoices.GetByID(ctx, businessID, invoiceID)
	if err != nil {
		return err
	}
	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	customer, err := s.customers.GetByID(ctx, businessID, inv.CustomerID)
	if err != nil {
		return err
	}

	to := normalizeEmail(input.To)
	if to == "" {
		to = customer.Email
	}
	if to == "" {
		return domain.ErrNoRecipient
	}

	msg := port.InvoiceEmail{
		ToEmail:       to,
		ToName:        customer.Name,
		BusinessName:  business.Name,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		GrandTotal:    inv.GrandTotal.StringFixed(2),
		DueAmount:     inv.DueAmount.StringFixed(2),
		Status:        string(inv.Status),
		Message:       strings.TrimSpace(input.Message),
	}
	if s.opts.FrontendURL != "" {
		msg.ViewURL = strings.TrimRight(s.opts.FrontendURL, "/") + "/invoices/" + inv.ID.String()
	}

	if err := s.email.SendInvoiceEmail(ctx, msg); err != nil {
		s.log.Error("invoice email failed", zap.String("invoice_id", invoiceID.String()), zap.Error(err))
		return fmt.Errorf("sending invoice email: %w", err)
	}
	s.log.Info("invoice emailed", zap.String("invoice_id", invoiceID.String()), zap.String("to", to))
	return nil
}

func (s *invoiceService) Export(ctx context.Context, businessID uuid.UUID, format domain.ExportFormat) (*ExportFile, error) {
	format = domain.ExportFormat(strings.ToLower(string(format)))
	if format == "" {
		format = domain.ExportFormatCSV
	}
	if format != domain.ExportFormatCSV && format != domain.ExportFormatXLSX {
		return nil, domain.ErrUnsupportedExport
	}

	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.ListAll(ctx, businessID)
	if err != nil {
		return nil, err
	}
	names, err := s.customerNames(ctx, businessID, invoices)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	file := &ExportFile{Filename: csvexport.BuildFilename(business.Name, string(format), s.now())}
	switch format {
	case domain.ExportFormatXLSX:
		file.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		if err := xlsxexport.WriteRegister(&buf, invoices, names); err != nil {
			return nil, err
		}
	default:
		file.ContentType = "text/csv; charset=utf-8"
		if err := csvexport.WriteBOM(&buf); err != nil {
			return nil, err
		}
		w := csvexport.NewWriter(&buf)
		if err := w.WriteHeader(); err != nil {
			return nil, err
		}
		if err := w.WriteInvoices(invoices, names); err != nil {
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
	}
	file.Data = buf.Bytes()

	s.log.Info("invoices exported",
		zap.String("business_id", businessID.String()),
		zap.String("format", string(format)),
		zap.Int("count", len(invoices)),
	)
	return file, nil
}

func (s *invoiceService) customerNames(ctx context.Context, businessID uuid.UUID, invoices []domain.Invoice) (map[string]string, error) {
	names := make(map[string]string)
	for i := range invoices {
		key := invoices[i].CustomerID.String()
		if _, ok := names[key]; ok {
			continue
		}
		c, err := s.customers.GetByID(ctx, businessID, invoices[i].CustomerID)
		switch {
		case err == nil:
			names[key] = c.Name
		case errors.Is(err, domain.ErrCustomerNotFound):
			names[key] = ""
		default:
			return nil, err
		}
	}
	return names, nil
}

// deriveJurisdiction compares the business and customer state codes. Without
// a customer state the supply is treated as intra-state.
func deriveJurisdiction(business *domain.Business, customer *domain.Customer) domain.Jurisdiction {
	if customer == nil || customer.StateCode == "" || business.StateCode == "" {
		return domain.JurisdictionIntra
	}
	if customer.StateCode == business.StateCode {
		return domain.JurisdictionIntra
	}
	return domain.JurisdictionInter
}

func applyTotals(inv *domain.Invoice, t totals.InvoiceTotals) {
	inv.Jurisdiction = t.Jurisdiction
	inv.Subtotal = t.Subtotal
	inv.TotalDiscount = t.TotalDiscount
	inv.OverallDiscount = t.OverallDiscount
	inv.TotalTax = t.TotalTax
	inv.CGST = t.CGST
	inv.SGST = t.SGST
	inv.IGST = t.IGST
	inv.GrandTotal = t.GrandTotal
	for i := range inv.Items {
		l := t.Lines[i]
		inv.Items[i].DiscountAmount = l.DiscountAmount
		inv.Items[i].LineSubtotal = l.LineSubtotal
		inv.Items[i].TaxAmount = l.TaxAmount
		inv.Items[i].LineTotalWithTax = l.LineTotalWithTax
	}
}

func newTotalsView(t totals.InvoiceTotals) TotalsView {
	lines := make([]LineTotalsView, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = LineTotalsView{
			BaseAmount:           l.BaseAmount,
			DiscountAmount:       l.DiscountAmount,
			LineSubtotal:         l.LineSubtotal,
			TaxRate:              l.TaxRate,
			TaxAmount:            l.TaxAmount,
			LineTotalWithTax:     l.LineTotalWithTax,
			OverallDiscountShare: l.OverallDiscountShare,
		}
	}
	return TotalsView{
		Lines:           lines,
		Jurisdiction:    t.Jurisdiction,
		Subtotal:        t.Subtotal,
		TotalDiscount:   t.TotalDiscount,
		TotalTax:        t.TotalTax,
		CGST:            t.CGST,
		SGST:            t.SGST,
		IGST:            t.IGST,
		OverallDiscount: t.OverallDiscount,
		GrandTotal:      t.GrandTotal,
	}
}

// appendViolations folds a validation error into dst. Other errors cannot
// come from the validators.
func appendViolations(dst []domain.FieldViolation, err error) []domain.FieldViolation {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return append(dst, ve.Violations...)
	}
	return dst
}

func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
