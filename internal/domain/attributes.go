package domain

// NotAvailable is the sentinel value carried by every attribute the
// upstream decode response did not include.
const NotAvailable = "N/A"

// DecodedAttributes is the normalized projection of one decode response.
// Instances are built once per decode call and never mutated afterwards.
type DecodedAttributes struct {
	VIN          VIN
	Make         string
	Model        string
	ModelYear    string
	BodyClass    string
	VehicleType  string
	FuelType     string
	Manufacturer string
	PlantCountry string
	PlantCity    string
	Displacement string
	Cylinders    string
	DriveType    string
	Doors        string
	Trim         string

	// FuelCapacity is a pre-rendered human-readable figure, because the
	// upstream rarely reports it directly and a fallback estimate may be
	// substituted. See the gateway's projection rules.
	FuelCapacity string

	// ErrorCode and ErrorText carry the upstream decoder's own diagnostic
	// for this VIN ("0" means a clean decode).
	ErrorCode string
	ErrorText string
}

// Known reports whether the value is present and not the sentinel.
func Known(value string) bool {
	return value != "" && value != NotAvailable
}
