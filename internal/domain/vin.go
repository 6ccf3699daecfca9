// Package domain contains core domain types for the VIN decoder bot.
package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// vinPattern matches a full 17-character VIN. The letters I, O and Q
// are excluded from the VIN alphabet to avoid confusion with 1 and 0.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// VIN is a normalized (uppercase) 17-character Vehicle Identification Number.
// Validity is format-only: no check-digit verification is performed.
type VIN string

// ParseVIN normalizes a candidate string to uppercase and validates its
// format. It returns an error for anything that is not a well-formed VIN.
func ParseVIN(candidate string) (VIN, error) {
	normalized := strings.ToUpper(strings.TrimSpace(candidate))
	if !vinPattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid VIN %q: must be 17 characters A-Z (no I, O, Q) or 0-9", candidate)
	}
	return VIN(normalized), nil
}

// IsValidVIN reports whether the candidate is a well-formed VIN after
// case normalization.
func IsValidVIN(candidate string) bool {
	_, err := ParseVIN(candidate)
	return err == nil
}

// String returns the VIN as a plain string.
func (v VIN) String() string {
	return string(v)
}
