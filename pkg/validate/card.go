package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	minCardDigits = 12
	maxCardDigits = 19
)

// NormalizeCard strips the spaces and dashes people type into card numbers.
func NormalizeCard(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

// IsPayoutCard reports whether s is a plausible card number: 12 to 19
// digits passing the Luhn check.
func IsPayoutCard(s string) bool {
	s = NormalizeCard(s)
	if len(s) < minCardDigits || len(s) > maxCardDigits {
		return false
	}
	return goluhn.Validate(s) == nil
}
