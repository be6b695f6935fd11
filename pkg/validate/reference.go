package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a digit string with a valid Luhn check
// digit.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsTrackingRef reports whether s looks like an internally generated
// tracking reference: the given prefix followed by a Luhn-checked digit
// payload.
func IsTrackingRef(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	digits := strings.TrimPrefix(s, prefix)
	if digits == "" {
		return false
	}
	return IsLuhn(digits)
}
