package repo

import "github.com/fleetflow/analytics-api/internal/models"

// InMemoryMaintenanceRepository is an in-memory implementation of
// MaintenanceRepository.
type InMemoryMaintenanceRepository struct {
	logs []models.MaintenanceLog
}

// NewInMemoryMaintenanceRepository creates a new instance of InMemoryMaintenanceRepository.
func NewInMemoryMaintenanceRepository() *InMemoryMaintenanceRepository {
	return &InMemoryMaintenanceRepository{logs: []models.MaintenanceLog{}}
}

// Add seeds a maintenance log.
func (r *InMemoryMaintenanceRepository) Add(l models.MaintenanceLog) {
	r.logs = append(r.logs, l)
}

func (r *InMemoryMaintenanceRepository) Clear() {
	r.logs = []models.MaintenanceLog{}
}

func (r *InMemoryMaintenanceRepository) SumCost() (float64, error) {
	var sum float64
	for _, l := range r.logs {
		sum += l.Cost
	}
	return sum, nil
}

func (r *InMemoryMaintenanceRepository) SumCostByVehicle(vehicleID int) (float64, error) {
	var sum float64
	for _, l := range r.logs {
		if l.VehicleID == vehicleID {
			sum += l.Cost
		}
	}
	return sum, nil
}
