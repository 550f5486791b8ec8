package repo

import "github.com/fleetflow/analytics-api/internal/models"

// InMemoryTripRepository is an in-memory implementation of TripRepository.
type InMemoryTripRepository struct {
	trips []models.Trip
}

// NewInMemoryTripRepository creates a new instance of InMemoryTripRepository.
func NewInMemoryTripRepository() *InMemoryTripRepository {
	return &InMemoryTripRepository{trips: []models.Trip{}}
}

// Add seeds a trip.
func (r *InMemoryTripRepository) Add(t models.Trip) {
	r.trips = append(r.trips, t)
}

func (r *InMemoryTripRepository) Clear() {
	r.trips = []models.Trip{}
}

func (r *InMemoryTripRepository) CountByStatus(status models.TripStatus) (int, error) {
	count := 0
	for _, t := range r.trips {
		if t.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryTripRepository) CountByVehicle(vehicleID int, status models.TripStatus) (int, error) {
	count := 0
	for _, t := range r.trips {
		if t.VehicleID == vehicleID && t.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryTripRepository) SumRevenueByStatus(status models.TripStatus) (float64, error) {
	var sum float64
	for _, t := range r.trips {
		if t.Status == status {
			sum += t.Revenue
		}
	}
	return sum, nil
}

func (r *InMemoryTripRepository) SumRevenueByVehicle(vehicleID int, status models.TripStatus) (float64, error) {
	var sum float64
	for _, t := range r.trips {
		if t.VehicleID == vehicleID && t.Status == status {
			sum += t.Revenue
		}
	}
	return sum, nil
}

func (r *InMemoryTripRepository) LastCompletedByVehicle(vehicleID int) (models.Trip, bool, error) {
	var last models.Trip
	found := false
	for _, t := range r.trips {
		if t.VehicleID != vehicleID || t.Status != models.TripCompleted || t.EndDate == nil {
			continue
		}
		if !found || t.EndDate.After(*last.EndDate) {
			last = t
			found = true
		}
	}
	return last, found, nil
}

func (r *InMemoryTripRepository) GetByVehicle(vehicleID int) ([]models.Trip, error) {
	var trips []models.Trip
	for _, t := range r.trips {
		if t.VehicleID == vehicleID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (r *InMemoryTripRepository) CountByDriver(driverID int) (int, error) {
	count := 0
	for _, t := range r.trips {
		if t.DriverID != nil && *t.DriverID == driverID {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryTripRepository) CountByDriverAndStatus(driverID int, status models.TripStatus) (int, error) {
	count := 0
	for _, t := range r.trips {
		if t.DriverID != nil && *t.DriverID == driverID && t.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryTripRepository) SumRevenueByDriver(driverID int, status models.TripStatus) (float64, error) {
	var sum float64
	for _, t := range r.trips {
		if t.DriverID != nil && *t.DriverID == driverID && t.Status == status {
			sum += t.Revenue
		}
	}
	return sum, nil
}
