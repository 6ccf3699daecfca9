package nhtsa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ashmarin/vinbot/internal/domain"
)

// vPIC variable names projected into DecodedAttributes.
const (
	varMake         = "Make"
	varModel        = "Model"
	varModelYear    = "Model Year"
	varBodyClass    = "Body Class"
	varVehicleType  = "Vehicle Type"
	varFuelType     = "Fuel Type - Primary"
	varManufacturer = "Manufacturer Name"
	varPlantCountry = "Plant Country"
	varPlantCity    = "Plant City"
	varDisplacement = "Displacement (L)"
	varCylinders    = "Engine Number of Cylinders"
	varDriveType    = "Drive Type"
	varDoors        = "Doors"
	varTrim         = "Trim"
	varErrorCode    = "Error Code"
	varErrorText    = "Error Text"
	varFuelGallons  = "Fuel Tank Capacity (gallons)"
	varFuelLiters   = "Fuel Tank Capacity (liters)"
)

// litersPerGallon converts the upstream liters figure into the
// approximate gallons shown to users.
const litersPerGallon = 3.785

// project maps the raw Results list into a DecodedAttributes record.
// The first occurrence of a variable wins; anything absent or blank
// becomes the "N/A" sentinel.
func project(vin domain.VIN, body decodeResponse) domain.DecodedAttributes {
	fields := make(map[string]string, len(body.Results))
	for _, r := range body.Results {
		if _, seen := fields[r.Variable]; seen {
			continue
		}
		if r.Value == nil {
			continue
		}
		if v := strings.TrimSpace(*r.Value); v != "" {
			fields[r.Variable] = v
		}
	}

	get := func(name string) string {
		if v, ok := fields[name]; ok {
			return v
		}
		return domain.NotAvailable
	}

	attrs := domain.DecodedAttributes{
		VIN:          vin,
		Make:         get(varMake),
		Model:        get(varModel),
		ModelYear:    get(varModelYear),
		BodyClass:    get(varBodyClass),
		VehicleType:  get(varVehicleType),
		FuelType:     get(varFuelType),
		Manufacturer: get(varManufacturer),
		PlantCountry: get(varPlantCountry),
		PlantCity:    get(varPlantCity),
		Displacement: get(varDisplacement),
		Cylinders:    get(varCylinders),
		DriveType:    get(varDriveType),
		Doors:        get(varDoors),
		Trim:         get(varTrim),
		ErrorCode:    get(varErrorCode),
		ErrorText:    get(varErrorText),
	}
	attrs.FuelCapacity = fuelCapacity(get(varFuelGallons), get(varFuelLiters), attrs.BodyClass)
	return attrs
}

// fuelCapacity renders a fuel tank figure with a two-tier fallback:
// prefer the gallons field, else convert the liters field, else
// substitute a coarse estimate keyed off the body class.
func fuelCapacity(gallons, liters, bodyClass string) string {
	if domain.Known(gallons) {
		return gallons + " gallons"
	}
	if domain.Known(liters) {
		if l, err := strconv.ParseFloat(strings.TrimSpace(liters), 64); err == nil {
			return fmt.Sprintf("~%.1f gallons (%s L)", l/litersPerGallon, strings.TrimSpace(liters))
		}
	}
	return estimatedFuelCapacity(bodyClass)
}

// estimatedFuelCapacity picks a typical tank range for the body class.
func estimatedFuelCapacity(bodyClass string) string {
	class := strings.ToLower(bodyClass)
	switch {
	case strings.Contains(class, "truck") || strings.Contains(class, "suv"):
		return "20-26 gallons (estimated)"
	case strings.Contains(class, "compact") || strings.Contains(class, "subcompact"):
		return "10-13 gallons (estimated)"
	case strings.Contains(class, "sedan"):
		return "14-18 gallons (estimated)"
	default:
		return "12-18 gallons (estimated)"
	}
}
