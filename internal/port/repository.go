package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

// BusinessRepository defines the contract for business profile persistence.
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
}

// CustomerRepository defines the contract for customer persistence.
// All query methods include businessID so one business never sees another's customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Customer, int, error)
	SearchByName(ctx context.Context, businessID uuid.UUID, query string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, businessID, customerID uuid.UUID) error
}

// InvoiceRepository defines the contract for invoice persistence.
// Create and Update write the header and all items atomically.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error)
	// GetForUpdate loads the header and locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, businessID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListAll(ctx context.Context, businessID uuid.UUID) ([]domain.Invoice, error)
	NumberExists(ctx context.Context, businessID uuid.UUID, number string) (bool, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	UpdatePaymentSummary(ctx context.Context, businessID, invoiceID uuid.UUID, summary domain.PaymentSummary) error
	Delete(ctx context.Context, businessID, invoiceID uuid.UUID) error
}

// PaymentRepository defines the contract for payment persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, businessID, paymentID uuid.UUID) (*domain.Payment, error)
	ListByInvoice(ctx context.Context, businessID, invoiceID uuid.UUID) ([]domain.Payment, error)
	AmountsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]decimal.Decimal, error)
	Delete(ctx context.Context, businessID, paymentID uuid.UUID) error
}

// TxRepositories are repositories bound to one transaction.
type TxRepositories struct {
	Invoices InvoiceRepository
	Payments PaymentRepository
}

// UnitOfWork runs fn inside a single database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

// PredefinedTemplateRepository defines the contract for the system template catalog.
type PredefinedTemplateRepository interface {
	List(ctx context.Context) ([]domain.PredefinedTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PredefinedTemplate, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// TemplateSettingsRepository defines the contract for a business's system template selection.
type TemplateSettingsRepository interface {
	GetByBusiness(ctx context.Context, businessID uuid.UUID) (*domain.BusinessTemplateSettings, error)
	Upsert(ctx context.Context, settings *domain.BusinessTemplateSettings) error
}

// InvoiceTemplateRepository defines the contract for business-defined templates.
type InvoiceTemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.InvoiceTemplate) error
	GetByID(ctx context.Context, businessID, templateID uuid.UUID) (*domain.InvoiceTemplate, error)
	GetDefault(ctx context.Context, businessID uuid.UUID) (*domain.InvoiceTemplate, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.InvoiceTemplate, error)
	Update(ctx context.Context, tmpl *domain.InvoiceTemplate) error
	// UnsetDefault clears the default flag on every template of the business except keepID.
	UnsetDefault(ctx context.Context, businessID, keepID uuid.UUID) error
	Delete(ctx context.Context, businessID, templateID uuid.UUID) error
}

// AssetRepository defines the contract for business asset metadata persistence.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.BusinessAsset) error
	GetByID(ctx context.Context, businessID, assetID uuid.UUID) (*domain.BusinessAsset, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.BusinessAsset, error)
	// LatestByType returns the most recent asset of each type.
	LatestByType(ctx context.Context, businessID uuid.UUID) (map[domain.AssetType]domain.BusinessAsset, error)
	Delete(ctx context.Context, businessID, assetID uuid.UUID) error
}
