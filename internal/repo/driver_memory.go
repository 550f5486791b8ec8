package repo

import "github.com/fleetflow/analytics-api/internal/models"

// InMemoryDriverRepository is an in-memory implementation of DriverRepository.
type InMemoryDriverRepository struct {
	drivers []models.Driver
}

// NewInMemoryDriverRepository creates a new instance of InMemoryDriverRepository.
func NewInMemoryDriverRepository() *InMemoryDriverRepository {
	return &InMemoryDriverRepository{drivers: []models.Driver{}}
}

// Add seeds a driver.
func (r *InMemoryDriverRepository) Add(d models.Driver) {
	r.drivers = append(r.drivers, d)
}

func (r *InMemoryDriverRepository) Clear() {
	r.drivers = []models.Driver{}
}

func (r *InMemoryDriverRepository) GetAll() ([]models.Driver, error) {
	return r.drivers, nil
}

func (r *InMemoryDriverRepository) GetByID(id int) (models.Driver, error) {
	for _, d := range r.drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Driver{}, ErrDriverNotFound
}

func (r *InMemoryDriverRepository) Count() (int, error) {
	return len(r.drivers), nil
}

func (r *InMemoryDriverRepository) CountByStatus(status string) (int, error) {
	count := 0
	for _, d := range r.drivers {
		if d.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryDriverRepository) AverageSafetyScore() (float64, error) {
	if len(r.drivers) == 0 {
		return 0, nil
	}
	total := 0
	for _, d := range r.drivers {
		total += d.SafetyScore
	}
	return float64(total) / float64(len(r.drivers)), nil
}
