package invoice

import (
	"net/url"
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// ShareLink builds a WhatsApp compose link carrying the given message body.
// The recipient is optional; any non-digit characters in it are stripped, and
// an empty recipient yields a link that lets the sender pick a contact.
func ShareLink(text, recipient string) string {
	digits := nonDigit.ReplaceAllString(recipient, "")
	if digits == "" {
		return "https://wa.me/?text=" + encodeComponent(text)
	}
	return "https://wa.me/" + digits + "?text=" + encodeComponent(text)
}

// encodeComponent percent-encodes with %20 for spaces, matching what chat
// apps expect in deep links.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
