package analytics

import (
	"sort"

	"github.com/fleetflow/analytics-api/internal/models"
)

// FuelEfficiencyReport is the km/L report for a single vehicle. KmPerLiter is
// nil when no fuel was ever recorded for the vehicle.
type FuelEfficiencyReport struct {
	VehicleID       int                  `json:"vehicleId"`
	NameModel       string               `json:"nameModel"`
	LicensePlate    string               `json:"licensePlate"`
	Status          models.VehicleStatus `json:"status"`
	Odometer        float64              `json:"odometer"`
	TotalFuelLiters float64              `json:"totalFuelLiters"`
	TotalFuelCost   float64              `json:"totalFuelCost"`
	KmPerLiter      *float64             `json:"kmPerLiter"`
	CompletedTrips  int                  `json:"completedTrips"`
}

// FuelEfficiency computes km/L per vehicle, best first. Vehicles without any
// recorded fuel sort as if their efficiency were 0.
func (s *Service) FuelEfficiency() ([]FuelEfficiencyReport, error) {
	vehicles, err := s.vehicles.GetAll()
	if err != nil {
		return nil, err
	}

	results := make([]FuelEfficiencyReport, 0, len(vehicles))
	for _, v := range vehicles {
		totalFuel, err := s.expenses.SumFuelLitersByVehicle(v.ID)
		if err != nil {
			return nil, err
		}
		totalCost, err := s.expenses.SumFuelCostByVehicle(v.ID)
		if err != nil {
			return nil, err
		}
		tripsDone, err := s.trips.CountByVehicle(v.ID, models.TripCompleted)
		if err != nil {
			return nil, err
		}

		// Full odometer reading as a proxy for total distance driven.
		kmDriven := v.Odometer

		var efficiency *float64
		if totalFuel > 0 {
			e := round2(kmDriven / totalFuel)
			efficiency = &e
		}

		results = append(results, FuelEfficiencyReport{
			VehicleID:       v.ID,
			NameModel:       v.NameModel,
			LicensePlate:    v.LicensePlate,
			Status:          v.Status,
			Odometer:        v.Odometer,
			TotalFuelLiters: round2(totalFuel),
			TotalFuelCost:   round2(totalCost),
			KmPerLiter:      efficiency,
			CompletedTrips:  tripsDone,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return kmPerLiterOrZero(results[i]) > kmPerLiterOrZero(results[j])
	})
	return results, nil
}

func kmPerLiterOrZero(r FuelEfficiencyReport) float64 {
	if r.KmPerLiter == nil {
		return 0
	}
	return *r.KmPerLiter
}
