package models

import "time"

// TripStatus is the closed set of states a trip can be in.
type TripStatus string

const (
	TripDraft      TripStatus = "DRAFT"
	TripDispatched TripStatus = "DISPATCHED"
	TripCompleted  TripStatus = "COMPLETED"
	TripCancelled  TripStatus = "CANCELLED"
)

// Trip represents a cargo trip. DriverID is nil for trips drafted without an
// assigned driver; EndDate is populated when the trip completes.
type Trip struct {
	ID          int        `json:"id"`
	VehicleID   int        `json:"vehicleId"`
	DriverID    *int       `json:"driverId"`
	CargoWeight float64    `json:"cargoWeight"`
	Status      TripStatus `json:"status"`
	Revenue     float64    `json:"revenue"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
