package analytics

import (
	"math"
	"time"

	"github.com/fleetflow/analytics-api/internal/repo"
)

// Service computes fleet KPIs from the read-only repositories. It holds no
// mutable state; one instance is built at startup and shared by all handlers.
type Service struct {
	vehicles    repo.VehicleRepository
	drivers     repo.DriverRepository
	trips       repo.TripRepository
	maintenance repo.MaintenanceRepository
	expenses    repo.ExpenseRepository

	now func() time.Time
}

// NewService creates a Service over the given repositories.
func NewService(
	vehicles repo.VehicleRepository,
	drivers repo.DriverRepository,
	trips repo.TripRepository,
	maintenance repo.MaintenanceRepository,
	expenses repo.ExpenseRepository,
) *Service {
	return &Service{
		vehicles:    vehicles,
		drivers:     drivers,
		trips:       trips,
		maintenance: maintenance,
		expenses:    expenses,
		now:         time.Now,
	}
}

// round1 rounds to 1 decimal place (percentages and safety scores).
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to 2 decimal places (monetary values and ratios).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
