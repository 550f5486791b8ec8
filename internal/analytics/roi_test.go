package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/fleetflow/analytics-api/internal/models"
	"github.com/fleetflow/analytics-api/internal/repo"
)

func TestVehicleROI(t *testing.T) {
	s, f := newTestService()

	f.vehicles.Add(models.Vehicle{ID: 1, NameModel: "Ashok Leyland Boss", AcquisitionCost: 1000000})

	end := time.Now().Add(-48 * time.Hour)
	f.trips.Add(models.Trip{ID: 1, VehicleID: 1, Status: models.TripCompleted, Revenue: 300000, EndDate: timePtr(end)})
	f.trips.Add(models.Trip{ID: 2, VehicleID: 1, Status: models.TripCancelled, Revenue: 90000})
	f.maintenance.Add(models.MaintenanceLog{ID: 1, VehicleID: 1, Cost: 50000})
	f.expenses.Add(models.Expense{ID: 1, VehicleID: 1, FuelCost: 20000})

	report, err := s.VehicleROI(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalRevenue != 300000 {
		t.Errorf("expected 300000 revenue, got %v", report.TotalRevenue)
	}
	if report.TotalCosts != 70000 {
		t.Errorf("expected 70000 total costs, got %v", report.TotalCosts)
	}
	if report.NetProfit != 230000 {
		t.Errorf("expected 230000 net profit, got %v", report.NetProfit)
	}
	if report.ROIPercent != 23.0 {
		t.Errorf("expected 23.0 ROI, got %v", report.ROIPercent)
	}
}

func TestVehicleROIZeroAcquisitionCost(t *testing.T) {
	s, f := newTestService()

	f.vehicles.Add(models.Vehicle{ID: 1, AcquisitionCost: 0})
	end := time.Now()
	f.trips.Add(models.Trip{ID: 1, VehicleID: 1, Status: models.TripCompleted, Revenue: 5000, EndDate: timePtr(end)})

	report, err := s.VehicleROI(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// ROI is exactly 0 here, not null and not an error.
	if report.ROIPercent != 0 {
		t.Errorf("expected 0 ROI with zero acquisition cost, got %v", report.ROIPercent)
	}
	if report.NetProfit != 5000 {
		t.Errorf("expected 5000 net profit, got %v", report.NetProfit)
	}
}

func TestVehicleROINotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.VehicleROI(42)
	if !errors.Is(err, repo.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestAllROI(t *testing.T) {
	s, f := newTestService()

	f.vehicles.Add(models.Vehicle{ID: 1, AcquisitionCost: 100000})
	f.vehicles.Add(models.Vehicle{ID: 2, AcquisitionCost: 200000})

	end := time.Now()
	f.trips.Add(models.Trip{ID: 1, VehicleID: 1, Status: models.TripCompleted, Revenue: 10000, EndDate: timePtr(end)})
	f.trips.Add(models.Trip{ID: 2, VehicleID: 2, Status: models.TripCompleted, Revenue: 30000, EndDate: timePtr(end)})

	reports, err := s.AllROI()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ROIPercent != 10.0 {
		t.Errorf("expected 10.0 ROI for vehicle 1, got %v", reports[0].ROIPercent)
	}
	if reports[1].ROIPercent != 15.0 {
		t.Errorf("expected 15.0 ROI for vehicle 2, got %v", reports[1].ROIPercent)
	}
}
