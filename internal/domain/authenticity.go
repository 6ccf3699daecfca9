package domain

import (
	"strconv"
	"strings"
)

// Model-year bounds accepted by the authenticity heuristic.
const (
	minPlausibleYear = 1980
	maxPlausibleYear = 2025
)

// authenticityThreshold is the minimum number of satisfied checks for a
// record to be classified as a real manufactured vehicle.
const authenticityThreshold = 5

// IsLikelyReal classifies a decoded record as a real manufactured vehicle
// rather than a synthetic or test VIN. Seven independent checks each score
// one point; the verdict is true at five or more. The rule is fixed and
// deterministic.
func IsLikelyReal(attrs DecodedAttributes) bool {
	score := 0

	if Known(attrs.Make) {
		score++
	}
	if Known(attrs.Model) {
		score++
	}
	if yearInRange(attrs.ModelYear) {
		score++
	}
	if Known(attrs.Manufacturer) {
		score++
	}
	if Known(attrs.PlantCountry) {
		score++
	}
	if Known(attrs.BodyClass) || Known(attrs.VehicleType) {
		score++
	}
	if cleanDecode(attrs.ErrorCode, attrs.ErrorText) {
		score++
	}

	return score >= authenticityThreshold
}

func yearInRange(year string) bool {
	if !Known(year) {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return false
	}
	return n >= minPlausibleYear && n <= maxPlausibleYear
}

func cleanDecode(code, text string) bool {
	return strings.TrimSpace(code) == "0" || strings.Contains(text, "VIN decoded clean")
}
