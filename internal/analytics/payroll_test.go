package analytics

import (
	"testing"
	"time"

	"github.com/fleetflow/analytics-api/internal/models"
)

func TestPayrollCompletionRate(t *testing.T) {
	s, f := newTestService()

	f.drivers.Add(models.Driver{ID: 1, Name: "Ravi Kumar", SafetyScore: 88})

	end := time.Now().Add(-time.Hour)
	for i := 1; i <= 7; i++ {
		f.trips.Add(models.Trip{ID: i, VehicleID: 1, DriverID: intPtr(1), Status: models.TripCompleted, Revenue: 1000, EndDate: timePtr(end)})
	}
	for i := 8; i <= 10; i++ {
		f.trips.Add(models.Trip{ID: i, VehicleID: 1, DriverID: intPtr(1), Status: models.TripCancelled})
	}

	reports, err := s.Payroll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 row, got %d", len(reports))
	}

	r := reports[0]
	if r.TotalTrips != 10 || r.CompletedTrips != 7 {
		t.Errorf("expected 10 total / 7 completed, got %d / %d", r.TotalTrips, r.CompletedTrips)
	}
	if r.CompletionRate != 70.0 {
		t.Errorf("expected 70.0 completion rate, got %v", r.CompletionRate)
	}
	if r.Revenue != 7000 {
		t.Errorf("expected 7000 revenue from completed trips, got %v", r.Revenue)
	}
	if r.SafetyScore != 88 {
		t.Errorf("expected safety score 88, got %d", r.SafetyScore)
	}
}

func TestPayrollNoTrips(t *testing.T) {
	s, f := newTestService()

	f.drivers.Add(models.Driver{ID: 1, Name: "Idle Driver", SafetyScore: 100})

	reports, err := s.Payroll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reports[0].CompletionRate != 0 {
		t.Errorf("expected 0 completion rate with no trips, got %v", reports[0].CompletionRate)
	}
	if reports[0].Revenue != 0 {
		t.Errorf("expected 0 revenue, got %v", reports[0].Revenue)
	}
}

func TestPayrollLicenseStatus(t *testing.T) {
	s, f := newTestService()
	s.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }

	expired := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	valid := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	f.drivers.Add(models.Driver{ID: 1, Name: "Expired", LicenseExpiryDate: &expired})
	f.drivers.Add(models.Driver{ID: 2, Name: "Valid", LicenseExpiryDate: &valid})
	f.drivers.Add(models.Driver{ID: 3, Name: "Unknown"})

	reports, err := s.Payroll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reports[0].LicenseStatus != "EXPIRED" || reports[0].LicenseExpiry != "01-03-2025" {
		t.Errorf("unexpected expired row: %q %q", reports[0].LicenseStatus, reports[0].LicenseExpiry)
	}
	if reports[1].LicenseStatus != "VALID" || reports[1].LicenseExpiry != "20-01-2026" {
		t.Errorf("unexpected valid row: %q %q", reports[1].LicenseStatus, reports[1].LicenseExpiry)
	}
	if reports[2].LicenseStatus != "VALID" || reports[2].LicenseExpiry != "N/A" {
		t.Errorf("unexpected missing-expiry row: %q %q", reports[2].LicenseStatus, reports[2].LicenseExpiry)
	}
}
