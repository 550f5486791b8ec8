package analytics

import "github.com/fleetflow/analytics-api/internal/models"

// ROIReport is the per-vehicle return-on-investment breakdown.
// ROIPercent is 0 (not null) when the acquisition cost is unknown or zero;
// this mirrors the asymmetry with FuelEfficiencyReport.KmPerLiter.
type ROIReport struct {
	VehicleID            int     `json:"vehicleId"`
	NameModel            string  `json:"nameModel"`
	LicensePlate         string  `json:"licensePlate"`
	AcquisitionCost      float64 `json:"acquisitionCost"`
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalMaintenanceCost float64 `json:"totalMaintenanceCost"`
	TotalFuelCost        float64 `json:"totalFuelCost"`
	TotalCosts           float64 `json:"totalCosts"`
	NetProfit            float64 `json:"netProfit"`
	ROIPercent           float64 `json:"roiPercent"`
}

// VehicleROI computes the ROI breakdown for one vehicle.
// Returns repo.ErrVehicleNotFound when the id does not resolve.
func (s *Service) VehicleROI(vehicleID int) (ROIReport, error) {
	vehicle, err := s.vehicles.GetByID(vehicleID)
	if err != nil {
		return ROIReport{}, err
	}
	return s.computeROI(vehicle)
}

// AllROI computes the ROI breakdown for every vehicle.
func (s *Service) AllROI() ([]ROIReport, error) {
	vehicles, err := s.vehicles.GetAll()
	if err != nil {
		return nil, err
	}

	reports := make([]ROIReport, 0, len(vehicles))
	for _, v := range vehicles {
		report, err := s.computeROI(v)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// computeROI is the shared ROI formula:
// (revenue - (maintenance + fuel)) / acquisition cost.
func (s *Service) computeROI(vehicle models.Vehicle) (ROIReport, error) {
	totalRevenue, err := s.trips.SumRevenueByVehicle(vehicle.ID, models.TripCompleted)
	if err != nil {
		return ROIReport{}, err
	}
	totalMaintenance, err := s.maintenance.SumCostByVehicle(vehicle.ID)
	if err != nil {
		return ROIReport{}, err
	}
	totalFuel, err := s.expenses.SumFuelCostByVehicle(vehicle.ID)
	if err != nil {
		return ROIReport{}, err
	}

	totalCosts := totalMaintenance + totalFuel
	netProfit := totalRevenue - totalCosts

	roi := 0.0
	if vehicle.AcquisitionCost != 0 {
		roi = round2(netProfit / vehicle.AcquisitionCost * 100)
	}

	return ROIReport{
		VehicleID:            vehicle.ID,
		NameModel:            vehicle.NameModel,
		LicensePlate:         vehicle.LicensePlate,
		AcquisitionCost:      vehicle.AcquisitionCost,
		TotalRevenue:         round2(totalRevenue),
		TotalMaintenanceCost: round2(totalMaintenance),
		TotalFuelCost:        round2(totalFuel),
		TotalCosts:           round2(totalCosts),
		NetProfit:            round2(netProfit),
		ROIPercent:           roi,
	}, nil
}
