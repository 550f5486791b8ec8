package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fleetflow/analytics-api/internal/repo"
)

// GetSummaryHandler godoc
// @Summary Fleet command center summary for the dashboard
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary
// @Failure 500 {object} errorDetail
// @Router /analytics/summary [get]
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := svc.Summary()
	if err != nil {
		log.Printf("summary failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	if err := writeJSON(w, http.StatusOK, summary); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetFuelEfficiencyHandler godoc
// @Summary Per-vehicle km/L fuel efficiency, best first
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.FuelEfficiencyReport
// @Failure 500 {object} errorDetail
// @Router /analytics/fuel-efficiency [get]
func GetFuelEfficiencyHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := svc.FuelEfficiency()
	if err != nil {
		log.Printf("fuel efficiency failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compute fuel efficiency")
		return
	}
	if err := writeJSON(w, http.StatusOK, reports); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetDeadStockHandler godoc
// @Summary Available vehicles idle for more than 14 days
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.DeadStockReport
// @Failure 500 {object} errorDetail
// @Router /analytics/dead-stock [get]
func GetDeadStockHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := svc.DeadStock()
	if err != nil {
		log.Printf("dead stock failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compute dead stock")
		return
	}
	if err := writeJSON(w, http.StatusOK, reports); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetVehicleROIHandler godoc
// @Summary ROI breakdown for one vehicle
// @Tags analytics
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} analytics.ROIReport
// @Failure 400 {object} errorDetail
// @Failure 404 {object} errorDetail
// @Failure 500 {object} errorDetail
// @Router /analytics/vehicle-roi/{id} [get]
func GetVehicleROIHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}

	report, err := svc.VehicleROI(id)
	if errors.Is(err, repo.ErrVehicleNotFound) {
		writeError(w, http.StatusNotFound, "Vehicle not found")
		return
	}
	if err != nil {
		log.Printf("vehicle roi failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compute ROI")
		return
	}
	if err := writeJSON(w, http.StatusOK, report); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetAllROIHandler godoc
// @Summary ROI breakdown for every vehicle
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.ROIReport
// @Failure 500 {object} errorDetail
// @Router /analytics/all-roi [get]
func GetAllROIHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := svc.AllROI()
	if err != nil {
		log.Printf("all roi failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compute ROI")
		return
	}
	if err := writeJSON(w, http.StatusOK, reports); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
