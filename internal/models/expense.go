package models

import "time"

// Expense records a fuel purchase for a vehicle, optionally tied to a trip.
type Expense struct {
	ID         int       `json:"id"`
	TripID     *int      `json:"tripId"`
	VehicleID  int       `json:"vehicleId"`
	FuelLiters float64   `json:"fuelLiters"`
	FuelCost   float64   `json:"fuelCost"`
	Date       time.Time `json:"date"`
}
