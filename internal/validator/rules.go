// Package validator checks user input before it reaches the invoice engine
// or the database. Every check is a named rule; failures are collected and
// returned together as a *domain.ValidationError.
package validator

import "gstbill/internal/domain"

// rule is one named check over a value of type T.
type rule[T any] struct {
	key   string
	check func(T) []domain.FieldViolation
}

func run[T any](v T, rules []rule[T]) error {
	var violations []domain.FieldViolation
	for _, r := range rules {
		for _, fv := range r.check(v) {
			fv.Rule = r.key
			violations = append(violations, fv)
		}
	}
	return domain.NewValidationError(violations)
}

func violation(field, msg string) []domain.FieldViolation {
	return []domain.FieldViolation{{Field: field, Message: msg}}
}

func required(field, value string) []domain.FieldViolation {
	if value == "" {
		return violation(field, "is required")
	}
	return nil
}
