package analytics

import (
	"time"

	"github.com/fleetflow/analytics-api/internal/repo"
)

type fixtures struct {
	vehicles    *repo.InMemoryVehicleRepository
	drivers     *repo.InMemoryDriverRepository
	trips       *repo.InMemoryTripRepository
	maintenance *repo.InMemoryMaintenanceRepository
	expenses    *repo.InMemoryExpenseRepository
}

func newTestService() (*Service, fixtures) {
	f := fixtures{
		vehicles:    repo.NewInMemoryVehicleRepository(),
		drivers:     repo.NewInMemoryDriverRepository(),
		trips:       repo.NewInMemoryTripRepository(),
		maintenance: repo.NewInMemoryMaintenanceRepository(),
		expenses:    repo.NewInMemoryExpenseRepository(),
	}
	s := NewService(f.vehicles, f.drivers, f.trips, f.maintenance, f.expenses)
	return s, f
}

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }
