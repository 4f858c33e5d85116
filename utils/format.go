package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyPrefix is textual on purpose; the rupee glyph is not in the PDF
// core fonts and mangles on basic printers.
const CurrencyPrefix = "Rs. "

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount with Indian digit grouping and exactly two
// fraction digits, e.g. 123456.789 -> "Rs. 1,23,456.79".
func FormatCurrency(amount float64) string {
	return CurrencyPrefix + enIN.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// ParseCurrency is the inverse of FormatCurrency. It tolerates a missing
// prefix and ignores grouping separators.
func ParseCurrency(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, strings.TrimSpace(CurrencyPrefix))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse currency %q: %w", s, err)
	}
	return v, nil
}

// FormatDate renders a date as zero-padded DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatQuantity renders a quantity without trailing zeros, so whole counts
// print as "5" and weighed goods as "2.5".
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
