package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Business is the seller profile that owns customers, invoices and templates.
type Business struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	StateCode string    `db:"state_code" json:"state_code"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a buyer billed by a business.
type Customer struct {
	ID         uuid.UUID `db:"id" json:"id"`
	BusinessID uuid.UUID `db:"business_id" json:"business_id"`
	Name       string    `db:"name" json:"name"`
	Phone      string    `db:"phone" json:"phone"`
	Email      string    `db:"email" json:"email"`
	Address    string    `db:"address" json:"address"`
	City       string    `db:"city" json:"city"`
	StateCode  string    `db:"state_code" json:"state_code"`
	GSTIN      string    `db:"gstin" json:"gstin"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice holds the header and the persisted totals snapshot computed at submission time.
type Invoice struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	BusinessID      uuid.UUID       `db:"business_id" json:"business_id"`
	CustomerID      uuid.UUID       `db:"customer_id" json:"customer_id"`
	TemplateID      *uuid.UUID      `db:"template_id" json:"template_id,omitempty"`
	InvoiceNumber   string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate     time.Time       `db:"invoice_date" json:"invoice_date"`
	DueDate         *time.Time      `db:"due_date" json:"due_date,omitempty"`
	Jurisdiction    Jurisdiction    `db:"jurisdiction" json:"jurisdiction"`
	DiscountMode    DiscountMode    `db:"discount_mode" json:"discount_mode"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	TotalDiscount   decimal.Decimal `db:"total_discount" json:"total_discount"`
	OverallDiscount decimal.Decimal `db:"overall_discount" json:"overall_discount"`
	TotalTax        decimal.Decimal `db:"total_tax" json:"total_tax"`
	CGST            decimal.Decimal `db:"cgst" json:"cgst"`
	SGST            decimal.Decimal `db:"sgst" json:"sgst"`
	IGST            decimal.Decimal `db:"igst" json:"igst"`
	GrandTotal      decimal.Decimal `db:"grand_total" json:"grand_total"`
	PaidAmount      decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	DueAmount       decimal.Decimal `db:"due_amount" json:"due_amount"`
	Status          PaymentStatus   `db:"status" json:"status"`
	Notes           string          `db:"notes" json:"notes"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
	Items           []InvoiceItem   `db:"-" json:"items,omitempty"`
}

// InvoiceItem is one billable row of an invoice with its computed line amounts.
type InvoiceItem struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	InvoiceID        uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Position         int             `db:"position" json:"position"`
	Name             string          `db:"name" json:"name"`
	Description      string          `db:"description" json:"description"`
	HSNCode          string          `db:"hsn_code" json:"hsn_code"`
	Quantity         decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice        decimal.Decimal `db:"unit_price" json:"unit_price"`
	Discount         decimal.Decimal `db:"discount" json:"discount"`
	TaxRate          decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	DiscountAmount   decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	LineSubtotal     decimal.Decimal `db:"line_subtotal" json:"line_subtotal"`
	TaxAmount        decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	LineTotalWithTax decimal.Decimal `db:"line_total" json:"line_total"`
}

// Payment is a single amount received against an invoice.
type Payment struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	InvoiceID      uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	BusinessID     uuid.UUID       `db:"business_id" json:"business_id"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Method         PaymentMethod   `db:"method" json:"method"`
	ReferenceID    string          `db:"reference_id" json:"reference_id"`
	BankName       string          `db:"bank_name" json:"bank_name"`
	AccountDetails string          `db:"account_details" json:"account_details"`
	PaymentDate    time.Time       `db:"payment_date" json:"payment_date"`
	Notes          string          `db:"notes" json:"notes"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// PaymentSummary is the recomputed payment state of an invoice.
type PaymentSummary struct {
	PaidAmount decimal.Decimal `json:"paid_amount"`
	DueAmount  decimal.Decimal `json:"due_amount"`
	Status     PaymentStatus   `json:"status"`
}

// PredefinedTemplate is a system-wide invoice layout that any business can select.
type PredefinedTemplate struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	PreviewImageURL string    `db:"preview_image_url" json:"preview_image_url"`
	UsageCount      int       `db:"usage_count" json:"usage_count"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// BusinessTemplateSettings records which system template a business uses and its accent color.
type BusinessTemplateSettings struct {
	ID         uuid.UUID `db:"id" json:"id"`
	BusinessID uuid.UUID `db:"business_id" json:"business_id"`
	TemplateID uuid.UUID `db:"template_id" json:"template_id"`
	ColorHex   string    `db:"color_hex" json:"color_hex"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceTemplate is a business-defined layout built from show/hide flags.
type InvoiceTemplate struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	BusinessID uuid.UUID      `db:"business_id" json:"business_id"`
	Name       string         `db:"name" json:"name"`
	Config     TemplateConfig `db:"config" json:"config"`
	IsDefault  bool           `db:"is_default" json:"is_default"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// TemplateConfig toggles the sections rendered on an invoice.
type TemplateConfig struct {
	ShowCustomerEmail   bool   `json:"show_customer_email"`
	ShowCustomerPhone   bool   `json:"show_customer_phone"`
	ShowCustomerAddress bool   `json:"show_customer_address"`
	ShowDiscount        bool   `json:"show_discount"`
	ShowPaymentInfo     bool   `json:"show_payment_info"`
	ShowLogo            bool   `json:"show_logo"`
	ShowSignature       bool   `json:"show_signature"`
	ShowQRCode          bool   `json:"show_qr_code"`
	ShowNotes           bool   `json:"show_notes"`
	ShowDueDate         bool   `json:"show_due_date"`
	ShowItemDescription bool   `json:"show_item_description"`
	AccentColor         string `json:"accent_color,omitempty"`
}

// DefaultTemplateConfig returns the flags used when a business has not customized its layout.
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		ShowCustomerEmail:   true,
		ShowCustomerPhone:   true,
		ShowCustomerAddress: true,
		ShowDiscount:        true,
		ShowPaymentInfo:     true,
		ShowLogo:            true,
		ShowNotes:           true,
		ShowDueDate:         true,
		ShowItemDescription: true,
	}
}

// Value implements driver.Valuer so the config is stored as JSONB.
func (c TemplateConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *TemplateConfig) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = TemplateConfig{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("template config: unsupported source type %T", src)
	}
}

// BusinessAsset is an uploaded image (logo, signature or payment QR) stored in S3.
type BusinessAsset struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BusinessID  uuid.UUID `db:"business_id" json:"business_id"`
	Type        AssetType `db:"asset_type" json:"asset_type"`
	FileName    string    `db:"file_name" json:"file_name"`
	ContentType string    `db:"content_type" json:"content_type"`
	SizeBytes   int64     `db:"size_bytes" json:"size_bytes"`
	S3Bucket    string    `db:"s3_bucket" json:"-"`
	S3Key       string    `db:"s3_key" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EffectiveTemplate is the layout resolved for rendering one invoice.
type EffectiveTemplate struct {
	Source          string         `json:"source"`
	TemplateID      *uuid.UUID     `json:"template_id,omitempty"`
	Name            string         `json:"name"`
	PreviewImageURL string         `json:"preview_image_url,omitempty"`
	ColorHex        string         `json:"color_hex,omitempty"`
	Config          TemplateConfig `json:"config"`
}

// Template sources reported in EffectiveTemplate.Source.
const (
	TemplateSourceInvoice = "invoice"
	TemplateSourceDefault = "business_default"
	TemplateSourceSystem  = "system"
	TemplateSourceBuiltin = "builtin"
)

// InvoiceView is the read-only payload consumed by display and print templates.
type InvoiceView struct {
	Invoice  *Invoice             `json:"invoice"`
	Customer *Customer            `json:"customer"`
	Business *Business            `json:"business"`
	Template EffectiveTemplate    `json:"template"`
	Assets   map[AssetType]string `json:"assets,omitempty"`
}
