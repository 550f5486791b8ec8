package repo

import "github.com/fleetflow/analytics-api/internal/models"

// InMemoryVehicleRepository is an in-memory implementation of
// VehicleRepository, used by tests as fixture storage.
type InMemoryVehicleRepository struct {
	vehicles []models.Vehicle
}

// NewInMemoryVehicleRepository creates a new instance of InMemoryVehicleRepository.
func NewInMemoryVehicleRepository() *InMemoryVehicleRepository {
	return &InMemoryVehicleRepository{vehicles: []models.Vehicle{}}
}

// Add seeds a vehicle.
func (r *InMemoryVehicleRepository) Add(v models.Vehicle) {
	r.vehicles = append(r.vehicles, v)
}

func (r *InMemoryVehicleRepository) Clear() {
	r.vehicles = []models.Vehicle{}
}

func (r *InMemoryVehicleRepository) GetAll() ([]models.Vehicle, error) {
	return r.vehicles, nil
}

func (r *InMemoryVehicleRepository) GetByID(id int) (models.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vehicle{}, ErrVehicleNotFound
}

func (r *InMemoryVehicleRepository) Count() (int, error) {
	return len(r.vehicles), nil
}

func (r *InMemoryVehicleRepository) CountByStatus(status models.VehicleStatus) (int, error) {
	count := 0
	for _, v := range r.vehicles {
		if v.Status == status {
			count++
		}
	}
	return count, nil
}
