package analytics_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fleetflow/analytics-api/internal/analytics"
	"github.com/fleetflow/analytics-api/internal/models"
)

func TestVehicleROIHandler(t *testing.T) {
	t.Cleanup(clearAllFixtures)
	r := newRouter()

	seedProfitableVehicle()

	w := doGet(r, "/analytics/vehicle-roi/1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var report analytics.ROIReport
	if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if report.NetProfit != 230000 {
		t.Errorf("expected 230000 net profit, got %v", report.NetProfit)
	}
	if report.ROIPercent != 23.0 {
		t.Errorf("expected 23.0 ROI, got %v", report.ROIPercent)
	}
}

func TestVehicleROIHandlerNotFound(t *testing.T) {
	t.Cleanup(clearAllFixtures)
	r := newRouter()

	w := doGet(r, "/analytics/vehicle-roi/999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	if resp["detail"] != "Vehicle not found" {
		t.Errorf("unexpected error detail: %q", resp["detail"])
	}
}

func TestVehicleROIHandlerBadID(t *testing.T) {
	r := newRouter()

	w := doGet(r, "/analytics/vehicle-roi/abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAllROIHandler(t *testing.T) {
	t.Cleanup(clearAllFixtures)
	r := newRouter()

	seedProfitableVehicle()
	vehicleRepo.Add(models.Vehicle{ID: 2, NameModel: "BharatBenz 2823", AcquisitionCost: 0})

	w := doGet(r, "/analytics/all-roi")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var reports []analytics.ROIReport
	if err := json.NewDecoder(w.Body).Decode(&reports); err != nil {
		t.Fatalf("failed to decode reports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ROIPercent != 23.0 {
		t.Errorf("expected 23.0 ROI for vehicle 1, got %v", reports[0].ROIPercent)
	}
	if reports[1].ROIPercent != 0 {
		t.Errorf("expected 0 ROI for zero acquisition cost, got %v", reports[1].ROIPercent)
	}
}
