package analytics

import "github.com/fleetflow/analytics-api/internal/models"

// Summary is the fleet command center payload for the dashboard.
type Summary struct {
	Fleet      FleetSummary     `json:"fleet"`
	Drivers    DriverSummary    `json:"drivers"`
	Financials FinancialSummary `json:"financials"`
	Trips      TripSummary      `json:"trips"`
}

type FleetSummary struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	InShop          int     `json:"inShop"`
	Available       int     `json:"available"`
	UtilizationRate float64 `json:"utilizationRate"`
	DeadStockCount  int     `json:"deadStockCount"`
}

type DriverSummary struct {
	Total          int     `json:"total"`
	OnDuty         int     `json:"onDuty"`
	AvgSafetyScore float64 `json:"avgSafetyScore"`
}

type FinancialSummary struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalFuelCost        float64 `json:"totalFuelCost"`
	TotalMaintenanceCost float64 `json:"totalMaintenanceCost"`
	NetProfit            float64 `json:"netProfit"`
}

type TripSummary struct {
	Completed int `json:"completed"`
	Active    int `json:"active"`
	Pending   int `json:"pending"`
}

// Summary aggregates fleet, driver, financial and trip counters in one pass.
// Every ratio guards its denominator so an empty fleet yields zeros, never an
// error.
func (s *Service) Summary() (Summary, error) {
	totalVehicles, err := s.vehicles.Count()
	if err != nil {
		return Summary{}, err
	}
	activeVehicles, err := s.vehicles.CountByStatus(models.VehicleOnTrip)
	if err != nil {
		return Summary{}, err
	}
	inShopVehicles, err := s.vehicles.CountByStatus(models.VehicleInShop)
	if err != nil {
		return Summary{}, err
	}
	availableVehicles, err := s.vehicles.CountByStatus(models.VehicleAvailable)
	if err != nil {
		return Summary{}, err
	}

	totalDrivers, err := s.drivers.Count()
	if err != nil {
		return Summary{}, err
	}
	onDuty, err := s.drivers.CountByStatus("ON_DUTY")
	if err != nil {
		return Summary{}, err
	}
	avgSafety, err := s.drivers.AverageSafetyScore()
	if err != nil {
		return Summary{}, err
	}

	totalRevenue, err := s.trips.SumRevenueByStatus(models.TripCompleted)
	if err != nil {
		return Summary{}, err
	}
	totalFuelCost, err := s.expenses.SumFuelCost()
	if err != nil {
		return Summary{}, err
	}
	totalMaintCost, err := s.maintenance.SumCost()
	if err != nil {
		return Summary{}, err
	}

	completedTrips, err := s.trips.CountByStatus(models.TripCompleted)
	if err != nil {
		return Summary{}, err
	}
	activeTrips, err := s.trips.CountByStatus(models.TripDispatched)
	if err != nil {
		return Summary{}, err
	}
	pendingTrips, err := s.trips.CountByStatus(models.TripDraft)
	if err != nil {
		return Summary{}, err
	}

	deadStock, err := s.DeadStock()
	if err != nil {
		return Summary{}, err
	}

	utilization := 0.0
	if totalVehicles > 0 {
		utilization = round1(float64(activeVehicles) / float64(totalVehicles) * 100)
	}

	return Summary{
		Fleet: FleetSummary{
			Total:           totalVehicles,
			Active:          activeVehicles,
			InShop:          inShopVehicles,
			Available:       availableVehicles,
			UtilizationRate: utilization,
			DeadStockCount:  len(deadStock),
		},
		Drivers: DriverSummary{
			Total:          totalDrivers,
			OnDuty:         onDuty,
			AvgSafetyScore: round1(avgSafety),
		},
		Financials: FinancialSummary{
			TotalRevenue:         round2(totalRevenue),
			TotalFuelCost:        round2(totalFuelCost),
			TotalMaintenanceCost: round2(totalMaintCost),
			NetProfit:            round2(totalRevenue - totalFuelCost - totalMaintCost),
		},
		Trips: TripSummary{
			Completed: completedTrips,
			Active:    activeTrips,
			Pending:   pendingTrips,
		},
	}, nil
}
