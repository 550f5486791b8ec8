package analytics

import (
	"errors"
	"fmt"

	"github.com/fleetflow/analytics-api/internal/models"
	"github.com/fleetflow/analytics-api/internal/repo"
)

// AuditReport is one vehicle row of the fleet health and financial audit.
// AvgDriverSafety averages the safety score of every driver ever assigned to
// one of the vehicle's trips, any trip status; it is "N/A" when no trip ever
// had a driver.
type AuditReport struct {
	ROIReport
	Status          models.VehicleStatus `json:"status"`
	Odometer        float64              `json:"odometer"`
	CompletedTrips  int                  `json:"completedTrips"`
	AvgDriverSafety string               `json:"avgDriverSafety"`
}

// Audit assembles the full audit table, one row per vehicle.
func (s *Service) Audit() ([]AuditReport, error) {
	vehicles, err := s.vehicles.GetAll()
	if err != nil {
		return nil, err
	}

	results := make([]AuditReport, 0, len(vehicles))
	for _, v := range vehicles {
		roi, err := s.computeROI(v)
		if err != nil {
			return nil, err
		}
		tripsCount, err := s.trips.CountByVehicle(v.ID, models.TripCompleted)
		if err != nil {
			return nil, err
		}
		avgSafety, err := s.avgDriverSafety(v.ID)
		if err != nil {
			return nil, err
		}

		results = append(results, AuditReport{
			ROIReport:       roi,
			Status:          v.Status,
			Odometer:        v.Odometer,
			CompletedTrips:  tripsCount,
			AvgDriverSafety: avgSafety,
		})
	}
	return results, nil
}

func (s *Service) avgDriverSafety(vehicleID int) (string, error) {
	trips, err := s.trips.GetByVehicle(vehicleID)
	if err != nil {
		return "", err
	}

	total, count := 0, 0
	for _, t := range trips {
		if t.DriverID == nil {
			continue
		}
		driver, err := s.drivers.GetByID(*t.DriverID)
		if errors.Is(err, repo.ErrDriverNotFound) {
			continue
		}
		if err != nil {
			return "", err
		}
		total += driver.SafetyScore
		count++
	}

	if count == 0 {
		return "N/A", nil
	}
	return fmt.Sprintf("%.1f", float64(total)/float64(count)), nil
}
