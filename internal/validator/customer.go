package validator

import (
	"strings"

	"gstbill/internal/domain"
)

var customerRules = []rule[*domain.Customer]{
	{key: "customer.name", check: func(c *domain.Customer) []domain.FieldViolation {
		return required("name", strings.TrimSpace(c.Name))
	}},
	{key: "customer.phone", check: func(c *domain.Customer) []domain.FieldViolation {
		return phoneFormat("phone", c.Phone)
	}},
	{key: "customer.email", check: func(c *domain.Customer) []domain.FieldViolation {
		return emailFormat("email", c.Email)
	}},
	{key: "customer.state_code", check: func(c *domain.Customer) []domain.FieldViolation {
		return stateCodeFormat("state_code", c.StateCode)
	}},
	{key: "customer.gstin", check: func(c *domain.Customer) []domain.FieldViolation {
		return gstinFormat("gstin", c.GSTIN)
	}},
	{key: "customer.gstin_state", check: func(c *domain.Customer) []domain.FieldViolation {
		return gstinStateCheck("gstin", c.GSTIN, c.StateCode)
	}},
}

// ValidateCustomer checks a customer record. Only the name is mandatory.
func ValidateCustomer(c *domain.Customer) error {
	return run(c, customerRules)
}
