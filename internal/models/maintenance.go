package models

import "time"

// MaintenanceLog records a single service event for a vehicle.
type MaintenanceLog struct {
	ID          int       `json:"id"`
	VehicleID   int       `json:"vehicleId"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
}
