package service

import (
	"strings"
	"time"
	"unicode"
)

// normalizeStateCode trims the code and pads a single digit ("7" -> "07").
func normalizeStateCode(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 && unicode.IsDigit(rune(s[0])) {
		return "0" + s
	}
	return s
}

func normalizeGSTIN(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizePhone strips spaces, dashes and a leading +91 or 0.
func normalizePhone(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	if strings.HasPrefix(s, "+91") && len(s) == 13 {
		return s[3:]
	}
	if strings.HasPrefix(s, "0") && len(s) == 11 {
		return s[1:]
	}
	return s
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// clampPage bounds pagination parameters.
func clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return offset, limit
}

var timeNow = time.Now
