package analytics

import (
	"testing"

	"github.com/fleetflow/analytics-api/internal/models"
)

func TestFuelEfficiency(t *testing.T) {
	s, f := newTestService()

	f.vehicles.Add(models.Vehicle{ID: 1, NameModel: "Tata Prima", Odometer: 15000, Status: models.VehicleAvailable})
	f.expenses.Add(models.Expense{ID: 1, VehicleID: 1, FuelLiters: 300, FuelCost: 25000})
	f.expenses.Add(models.Expense{ID: 2, VehicleID: 1, FuelLiters: 200, FuelCost: 17000})

	reports, err := s.FuelEfficiency()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	r := reports[0]
	if r.TotalFuelLiters != 500 {
		t.Errorf("expected 500 liters, got %v", r.TotalFuelLiters)
	}
	if r.TotalFuelCost != 42000 {
		t.Errorf("expected 42000 fuel cost, got %v", r.TotalFuelCost)
	}
	if r.KmPerLiter == nil || *r.KmPerLiter != 30.0 {
		t.Errorf("expected 30.0 km/L, got %v", r.KmPerLiter)
	}
}

func TestFuelEfficiencyZeroFuelIsNull(t *testing.T) {
	s, f := newTestService()

	f.vehicles.Add(models.Vehicle{ID: 1, Odometer: 80000, Status: models.VehicleAvailable})

	reports, err := s.FuelEfficiency()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports[0].KmPerLiter != nil {
		t.Errorf("expected nil km/L with no fuel recorded, got %v", *reports[0].KmPerLiter)
	}
}

func TestFuelEfficiencySortedDescending(t *testing.T) {
	s, f := newTestService()

	// 10 km/L, no fuel (sorts as 0), 40 km/L.
	f.vehicles.Add(models.Vehicle{ID: 1, Odometer: 1000})
	f.vehicles.Add(models.Vehicle{ID: 2, Odometer: 5000})
	f.vehicles.Add(models.Vehicle{ID: 3, Odometer: 4000})
	f.expenses.Add(models.Expense{ID: 1, VehicleID: 1, FuelLiters: 100})
	f.expenses.Add(models.Expense{ID: 2, VehicleID: 3, FuelLiters: 100})

	reports, err := s.FuelEfficiency()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := [3]int{reports[0].VehicleID, reports[1].VehicleID, reports[2].VehicleID}
	if ids != [3]int{3, 1, 2} {
		t.Errorf("expected order [3 1 2], got %v", ids)
	}
	if reports[2].KmPerLiter != nil {
		t.Errorf("expected the fuel-less vehicle to sort last with nil km/L")
	}
}
