package notifier

import (
	"net/url"
	"strings"
)

// BuildWhatsAppLink constructs a wa.me deep link for the customer's phone.
// Indonesian local numbers (leading 0) are rewritten to the 62 country
// code. Returns "" when no usable digits remain.
func BuildWhatsAppLink(phone string, message string) string {
	digits := normalizePhone(phone)
	if digits == "" {
		return ""
	}

	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}
	return digits
}
