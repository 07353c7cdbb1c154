package validator

import (
	"strings"

	"gstbill/internal/domain"
)

var templateRules = []rule[*domain.InvoiceTemplate]{
	{key: "template.name", check: func(t *domain.InvoiceTemplate) []domain.FieldViolation {
		return required("name", strings.TrimSpace(t.Name))
	}},
	{key: "template.accent_color", check: func(t *domain.InvoiceTemplate) []domain.FieldViolation {
		return regexCheck("config.accent_color", t.Config.AccentColor, "a #RRGGBB color", colorHexPattern)
	}},
}

// ValidateTemplate checks a business-defined invoice template.
func ValidateTemplate(t *domain.InvoiceTemplate) error {
	return run(t, templateRules)
}
