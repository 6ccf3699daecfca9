package bot

import (
	"errors"
	"strings"
	"testing"

	"github.com/ashmarin/vinbot/internal/domain"
	"github.com/ashmarin/vinbot/internal/randomvin"
	"github.com/ashmarin/vinbot/internal/shared"
)

func sampleAttrs() domain.DecodedAttributes {
	return domain.DecodedAttributes{
		VIN:          domain.VIN(testVIN),
		Make:         "HONDA",
		Model:        "Accord",
		ModelYear:    "2003",
		BodyClass:    "Sedan/Saloon",
		VehicleType:  "PASSENGER CAR",
		FuelType:     "Gasoline",
		Manufacturer: "HONDA MFG OF AMERICA",
		PlantCountry: "UNITED STATES (USA)",
		PlantCity:    "MARYSVILLE",
		Displacement: "3.0",
		Cylinders:    "6",
		DriveType:    "FWD",
		Doors:        "4",
		Trim:         "EX-V6",
		FuelCapacity: "~13.2 gallons (50 L)",
		ErrorCode:    "0",
		ErrorText:    "0 - VIN decoded clean.",
	}
}

func TestRenderSummary(t *testing.T) {
	got := renderSummary(sampleAttrs())
	for _, want := range []string{testVIN, "HONDA", "Accord", "2003"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderReport_ContainsAllFieldsAndVerdict(t *testing.T) {
	got := renderReport(sampleAttrs())
	wants := []string{
		testVIN, "HONDA", "Accord", "2003", "Sedan/Saloon", "PASSENGER CAR",
		"Gasoline", "~13.2 gallons (50 L)", "3.0", "6", "HONDA MFG OF AMERICA",
		"UNITED STATES (USA)", "MARYSVILLE", "FWD", "EX-V6",
		"real manufactured vehicle",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("Expected report to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderReport_SyntheticVerdict(t *testing.T) {
	attrs := domain.DecodedAttributes{VIN: domain.VIN(testVIN)}
	got := renderReport(attrs)
	if !strings.Contains(got, "synthetic") {
		t.Errorf("Expected synthetic verdict, got:\n%s", got)
	}
}

func TestRenderDecodeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"status carries code", &shared.UpstreamStatusError{Service: "decode service", StatusCode: 503}, "503"},
		{"timeout", shared.ErrTimeout, "too long"},
		{"other", errors.New("boom"), "API Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderDecodeError(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Expected %q in %q", tt.want, got)
			}
		})
	}
}

func TestRenderRandomError_Exhausted(t *testing.T) {
	got := renderRandomError(randomvin.ErrExhausted)
	if !strings.Contains(got, "try again") && !strings.Contains(got, "Try again") {
		t.Errorf("Expected a retry hint, got %q", got)
	}
}

func TestReportToken_RoundTrip(t *testing.T) {
	vin := domain.VIN(testVIN)
	token := reportToken(vin)

	got, ok := reportVIN(token)
	if !ok {
		t.Fatalf("Expected token %q to parse", token)
	}
	if got != vin {
		t.Errorf("Expected %q, got %q", vin, got)
	}
}

func TestReportVIN_RejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "report:", "report:short", "randomvin:again", testVIN} {
		if _, ok := reportVIN(token); ok {
			t.Errorf("Expected token %q to be rejected", token)
		}
	}
}
