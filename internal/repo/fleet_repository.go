package repo

import (
	"errors"

	"github.com/fleetflow/analytics-api/internal/models"
)

// ErrVehicleNotFound is returned when a vehicle id does not resolve.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrDriverNotFound is returned when a driver id does not resolve.
var ErrDriverNotFound = errors.New("driver not found")

// VehicleRepository defines the read-only vehicle queries the analytics
// layer needs.
type VehicleRepository interface {
	GetAll() ([]models.Vehicle, error)
	GetByID(id int) (models.Vehicle, error)
	Count() (int, error)
	CountByStatus(status models.VehicleStatus) (int, error)
}

// DriverRepository defines the read-only driver queries.
type DriverRepository interface {
	GetAll() ([]models.Driver, error)
	GetByID(id int) (models.Driver, error)
	Count() (int, error)
	CountByStatus(status string) (int, error)
	AverageSafetyScore() (float64, error)
}

// TripRepository defines the read-only trip queries. Sums over no matching
// rows are 0; LastCompletedByVehicle reports absence via its second result.
type TripRepository interface {
	CountByStatus(status models.TripStatus) (int, error)
	CountByVehicle(vehicleID int, status models.TripStatus) (int, error)
	SumRevenueByStatus(status models.TripStatus) (float64, error)
	SumRevenueByVehicle(vehicleID int, status models.TripStatus) (float64, error)
	LastCompletedByVehicle(vehicleID int) (models.Trip, bool, error)
	GetByVehicle(vehicleID int) ([]models.Trip, error)
	CountByDriver(driverID int) (int, error)
	CountByDriverAndStatus(driverID int, status models.TripStatus) (int, error)
	SumRevenueByDriver(driverID int, status models.TripStatus) (float64, error)
}

// MaintenanceRepository defines the read-only maintenance cost queries.
type MaintenanceRepository interface {
	SumCost() (float64, error)
	SumCostByVehicle(vehicleID int) (float64, error)
}

// ExpenseRepository defines the read-only fuel expense queries.
type ExpenseRepository interface {
	SumFuelCost() (float64, error)
	SumFuelCostByVehicle(vehicleID int) (float64, error)
	SumFuelLitersByVehicle(vehicleID int) (float64, error)
}
