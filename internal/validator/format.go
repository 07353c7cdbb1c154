package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"gstbill/internal/domain"
)

var (
	gstinPattern     = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	stateCodePattern = regexp.MustCompile(`^\d{2}$`)
	phonePattern     = regexp.MustCompile(`^\d{10}$`)
	hsnPattern       = regexp.MustCompile(`^\d{4,8}$`)
	colorHexPattern  = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// regexCheck skips empty values; callers pair it with required when needed.
func regexCheck(field, value, expected string, re *regexp.Regexp) []domain.FieldViolation {
	if value == "" || re.MatchString(value) {
		return nil
	}
	return violation(field, fmt.Sprintf("must be %s", expected))
}

func gstinFormat(field, gstin string) []domain.FieldViolation {
	return regexCheck(field, gstin, "a valid 15-character GSTIN", gstinPattern)
}

func stateCodeFormat(field, code string) []domain.FieldViolation {
	return regexCheck(field, code, "a 2-digit state code", stateCodePattern)
}

func phoneFormat(field, phone string) []domain.FieldViolation {
	return regexCheck(field, phone, "a 10-digit phone number", phonePattern)
}

func emailFormat(field, email string) []domain.FieldViolation {
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return violation(field, "must be a valid email address")
	}
	return nil
}

// ValidColorHex reports whether s is a #RRGGBB color.
func ValidColorHex(s string) bool {
	return colorHexPattern.MatchString(s)
}

var dateFormats = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02 Jan 2006",
	"2 Jan 2006",
	"2006-01-02T15:04:05Z07:00",
}

// ParseDate accepts the date layouts used by invoice forms. The result is
// truncated to a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date: %s", s)
}
