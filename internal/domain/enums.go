package domain

// Jurisdiction determines how GST is split on an invoice.
type Jurisdiction string

const (
	// JurisdictionIntra is a same-state supply taxed as CGST + SGST.
	JurisdictionIntra Jurisdiction = "INTRA"
	// JurisdictionInter is an inter-state supply taxed as IGST.
	JurisdictionInter Jurisdiction = "INTER"
)

// Valid reports whether j is a known jurisdiction.
func (j Jurisdiction) Valid() bool {
	return j == JurisdictionIntra || j == JurisdictionInter
}

// DiscountMode defines how the per-line discount field is interpreted.
type DiscountMode string

const (
	DiscountModePercent  DiscountMode = "PERCENT"
	DiscountModeAbsolute DiscountMode = "ABSOLUTE"
)

// Valid reports whether m is a known discount mode.
func (m DiscountMode) Valid() bool {
	return m == DiscountModePercent || m == DiscountModeAbsolute
}

// DiscountStage defines where the header-level overall discount is applied.
type DiscountStage string

const (
	DiscountStagePostTax DiscountStage = "post_tax"
	DiscountStagePreTax  DiscountStage = "pre_tax"
)

// PaymentStatus represents the payment lifecycle of an invoice.
// DUE -> PARTIAL -> PAID while payments accumulate; deleting a payment may move it back.
type PaymentStatus string

const (
	PaymentStatusDue     PaymentStatus = "DUE"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// PaymentMethod is the instrument used for a payment.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodBank   PaymentMethod = "BANK"
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodCheque PaymentMethod = "CHEQUE"
	PaymentMethodOther  PaymentMethod = "OTHER"
)

// ValidPaymentMethods is the set of accepted payment methods.
var ValidPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodCash:   true,
	PaymentMethodBank:   true,
	PaymentMethodUPI:    true,
	PaymentMethodCard:   true,
	PaymentMethodCheque: true,
	PaymentMethodOther:  true,
}

// AssetType classifies an uploaded business asset.
type AssetType string

const (
	AssetTypeLogo      AssetType = "LOGO"
	AssetTypeSignature AssetType = "SIGNATURE"
	AssetTypeQR        AssetType = "QR"
)

// ValidAssetTypes is the set of accepted asset types.
var ValidAssetTypes = map[AssetType]bool{
	AssetTypeLogo:      true,
	AssetTypeSignature: true,
	AssetTypeQR:        true,
}

// FileType represents the allowed image types for asset upload.
type FileType string

const (
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"image/jpeg": FileTypeJPG,
	"image/png":  FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// ExportFormat is the file format of an invoice register export.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)
