package analytics

import (
	"time"

	"github.com/fleetflow/analytics-api/internal/models"
)

// deadStockThreshold is how long an AVAILABLE vehicle may sit without a
// completed trip before it counts as dead stock.
const deadStockThreshold = 14 * 24 * time.Hour

// neverUsedDaysIdle is the daysIdle sentinel for vehicles with no completed
// trip on record.
const neverUsedDaysIdle = 999

// DeadStockReport flags an idle vehicle. LastTripEnd is nil when the vehicle
// was never used.
type DeadStockReport struct {
	VehicleID    int        `json:"vehicleId"`
	NameModel    string     `json:"nameModel"`
	LicensePlate string     `json:"licensePlate"`
	DaysIdle     int        `json:"daysIdle"`
	LastTripEnd  *time.Time `json:"lastTripEnd"`
}

// DeadStock lists AVAILABLE vehicles whose most recent completed trip ended
// strictly more than 14 days ago, or that never completed a trip at all.
// A trip that ended exactly 14 days ago does not qualify.
func (s *Service) DeadStock() ([]DeadStockReport, error) {
	vehicles, err := s.vehicles.GetAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	results := []DeadStockReport{}
	for _, v := range vehicles {
		if v.Status != models.VehicleAvailable {
			continue
		}

		last, ok, err := s.trips.LastCompletedByVehicle(v.ID)
		if err != nil {
			return nil, err
		}

		if !ok {
			results = append(results, DeadStockReport{
				VehicleID:    v.ID,
				NameModel:    v.NameModel,
				LicensePlate: v.LicensePlate,
				DaysIdle:     neverUsedDaysIdle,
				LastTripEnd:  nil,
			})
			continue
		}

		idle := now.Sub(*last.EndDate)
		if idle > deadStockThreshold {
			end := *last.EndDate
			results = append(results, DeadStockReport{
				VehicleID:    v.ID,
				NameModel:    v.NameModel,
				LicensePlate: v.LicensePlate,
				DaysIdle:     int(idle.Hours() / 24),
				LastTripEnd:  &end,
			})
		}
	}
	return results, nil
}
