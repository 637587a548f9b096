package utils

import (
	"strings"
	"unicode"
)

// NormalizePhone strips everything but digits and a leading plus sign
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CallLink returns a tel: URI for phone, or an empty string when phone has
// no digits.
func CallLink(phone string) string {
	n := NormalizePhone(phone)
	if strings.TrimPrefix(n, "+") == "" {
		return ""
	}
	return "tel:" + n
}

// MessageLink returns an sms: URI for phone, or an empty string when phone
// has no digits.
func MessageLink(phone string) string {
	n := NormalizePhone(phone)
	if strings.TrimPrefix(n, "+") == "" {
		return ""
	}
	return "sms:" + n
}
