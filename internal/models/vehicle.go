package models

// VehicleStatus is the closed set of states a vehicle can be in.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "AVAILABLE"
	VehicleOnTrip    VehicleStatus = "ON_TRIP"
	VehicleInShop    VehicleStatus = "IN_SHOP"
	VehicleRetired   VehicleStatus = "RETIRED"
)

// Vehicle represents a fleet vehicle. The odometer holds the raw lifetime
// reading and is used as-is as a proxy for total distance driven.
type Vehicle struct {
	ID              int           `json:"id"`
	NameModel       string        `json:"nameModel"`
	LicensePlate    string        `json:"licensePlate"`
	MaxCapacityKg   int           `json:"maxCapacityKg"`
	Odometer        float64       `json:"odometer"`
	Status          VehicleStatus `json:"status"`
	AcquisitionCost float64       `json:"acquisitionCost"`
}
