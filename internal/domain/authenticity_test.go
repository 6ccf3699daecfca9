package domain

import "testing"

// fivePointAttrs satisfies exactly five checks: make, model, year,
// manufacturer and a clean decode code. Everything else is absent.
func fivePointAttrs() DecodedAttributes {
	return DecodedAttributes{
		Make:         "HONDA",
		Model:        "Accord",
		ModelYear:    "2020",
		Manufacturer: "HONDA MFG OF AMERICA",
		ErrorCode:    "0",
		PlantCountry: NotAvailable,
		BodyClass:    NotAvailable,
		VehicleType:  NotAvailable,
	}
}

func TestIsLikelyReal_Boundary(t *testing.T) {
	attrs := fivePointAttrs()
	if !IsLikelyReal(attrs) {
		t.Error("Expected five satisfied checks to classify as real")
	}

	attrs.Manufacturer = NotAvailable
	if IsLikelyReal(attrs) {
		t.Error("Expected four satisfied checks to classify as synthetic")
	}
}

func TestIsLikelyReal_AllChecks(t *testing.T) {
	attrs := DecodedAttributes{
		Make:         "TOYOTA",
		Model:        "Camry",
		ModelYear:    "2015",
		Manufacturer: "TOYOTA MOTOR",
		PlantCountry: "JAPAN",
		BodyClass:    "Sedan/Saloon",
		VehicleType:  "PASSENGER CAR",
		ErrorCode:    "0",
		ErrorText:    "0 - VIN decoded clean.",
	}
	if !IsLikelyReal(attrs) {
		t.Error("Expected fully populated record to classify as real")
	}
}

func TestIsLikelyReal_EmptyRecord(t *testing.T) {
	if IsLikelyReal(DecodedAttributes{}) {
		t.Error("Expected empty record to classify as synthetic")
	}
}

func TestIsLikelyReal_YearBounds(t *testing.T) {
	tests := []struct {
		year string
		want bool
	}{
		{"1980", true},
		{"2025", true},
		{"1979", false},
		{"2026", false},
		{"not-a-year", false},
		{NotAvailable, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			// Four other checks pass, so the verdict hinges on the year.
			attrs := DecodedAttributes{
				Make:         "FORD",
				Model:        "F-150",
				ModelYear:    tt.year,
				Manufacturer: "FORD MOTOR COMPANY",
				ErrorCode:    "0",
			}
			if got := IsLikelyReal(attrs); got != tt.want {
				t.Errorf("Year %q: got %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

func TestIsLikelyReal_CleanDecodeByErrorText(t *testing.T) {
	attrs := DecodedAttributes{
		Make:         "HONDA",
		Model:        "Accord",
		ModelYear:    "2020",
		Manufacturer: "HONDA MFG OF AMERICA",
		ErrorCode:    "6",
		ErrorText:    "6 - Incomplete VIN; VIN decoded clean with partial data",
	}
	if !IsLikelyReal(attrs) {
		t.Error("Expected error text mentioning a clean decode to count")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAwaitingVIN, "awaiting_vin"},
		{StateAwaitingAgain, "awaiting_again"},
		{StateEnded, "ended"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
