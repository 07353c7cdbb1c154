package validator

import (
	"strings"

	"gstbill/internal/domain"
)

var businessRules = []rule[*domain.Business]{
	{key: "business.name", check: func(b *domain.Business) []domain.FieldViolation {
		return required("name", strings.TrimSpace(b.Name))
	}},
	{key: "business.address", check: func(b *domain.Business) []domain.FieldViolation {
		return required("address", strings.TrimSpace(b.Address))
	}},
	{key: "business.state_code", check: func(b *domain.Business) []domain.FieldViolation {
		if v := required("state_code", b.StateCode); v != nil {
			return v
		}
		return stateCodeFormat("state_code", b.StateCode)
	}},
	{key: "business.phone", check: func(b *domain.Business) []domain.FieldViolation {
		if v := required("phone", b.Phone); v != nil {
			return v
		}
		return phoneFormat("phone", b.Phone)
	}},
	{key: "business.email", check: func(b *domain.Business) []domain.FieldViolation {
		return emailFormat("email", b.Email)
	}},
	{key: "business.gstin", check: func(b *domain.Business) []domain.FieldViolation {
		return gstinFormat("gstin", b.GSTIN)
	}},
	{key: "business.gstin_state", check: func(b *domain.Business) []domain.FieldViolation {
		return gstinStateCheck("gstin", b.GSTIN, b.StateCode)
	}},
}

// ValidateBusiness checks a business profile.
func ValidateBusiness(b *domain.Business) error {
	return run(b, businessRules)
}
