// Package format holds the presentation helpers shared by the cart views and
// the checkout receipt: Brazilian currency rendering and phone masking.
package format

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var nonDigits = regexp.MustCompile(`\D`)

// Currency renders an amount as UI-facing currency text: two fixed decimals
// with a comma separator, e.g. 60 -> "R$60,00".
func Currency(v decimal.Decimal) string {
	fixed := v.StringFixed(2)
	out := []byte(fixed)
	out[len(out)-3] = ','
	return "R$" + string(out)
}

// ReceiptTotal renders the total exactly as the checkout receipt does:
// "R$" + total + ".00". The suffix is literal and part of the wire contract
// with the receipt format, distinct from the UI rendering above.
func ReceiptTotal(v decimal.Decimal) string {
	return fmt.Sprintf("R$%s.00", v.String())
}

// DigitsOnly strips everything but digits from s.
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// FormatPhone renders an 11-digit Brazilian phone as "(DD) DDDDD-DDDD".
// Anything that does not unmask to exactly 11 digits is returned as-is.
func FormatPhone(s string) string {
	cleaned := DigitsOnly(s)
	if len(cleaned) != 11 {
		return s
	}
	return fmt.Sprintf("(%s) %s-%s", cleaned[:2], cleaned[2:7], cleaned[7:])
}

// MaskPhone progressively formats raw input while the buyer types: the area
// code parenthesizes after two digits and the dash appears after seven.
func MaskPhone(s string) string {
	cleaned := DigitsOnly(s)
	if len(cleaned) > 11 {
		cleaned = cleaned[:11]
	}

	switch {
	case len(cleaned) >= 7:
		return fmt.Sprintf("(%s) %s-%s", cleaned[:2], cleaned[2:7], cleaned[7:])
	case len(cleaned) >= 2:
		return fmt.Sprintf("(%s) %s", cleaned[:2], cleaned[2:])
	default:
		return cleaned
	}
}
