package validator

import (
	"fmt"

	"gstbill/internal/domain"
)

// gstinStateCheck requires the first two GSTIN digits to equal the state code.
// It is skipped when either value is missing or already failed its format check.
func gstinStateCheck(field, gstin, stateCode string) []domain.FieldViolation {
	if gstin == "" || stateCode == "" {
		return nil
	}
	if !gstinPattern.MatchString(gstin) || !stateCodePattern.MatchString(stateCode) {
		return nil
	}
	if gstin[:2] != stateCode {
		return violation(field, fmt.Sprintf("GSTIN prefix %s does not match state code %s", gstin[:2], stateCode))
	}
	return nil
}
