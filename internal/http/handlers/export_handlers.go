package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/fleetflow/analytics-api/internal/export"
)

// ExportAuditCSVHandler godoc
// @Summary Download the fleet health & financial audit as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} errorDetail
// @Router /analytics/export [get]
func ExportAuditCSVHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := svc.Audit()
	if err != nil {
		log.Printf("audit export failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to build audit export")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=fleetflow_audit.csv`)
	if err := export.WriteAuditCSV(w, reports); err != nil {
		log.Printf("Failed to write CSV response: %v", err)
	}
}

// ExportAuditPDFHandler godoc
// @Summary Download the fleet health & financial audit as PDF
// @Tags export
// @Produce application/pdf
// @Success 200 {string} string "PDF document"
// @Failure 500 {object} errorDetail
// @Router /analytics/export-pdf [get]
func ExportAuditPDFHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := svc.Audit()
	if err != nil {
		log.Printf("audit pdf export failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to build audit export")
		return
	}

	filename := fmt.Sprintf("fleetflow_audit_%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := export.WriteAuditPDF(w, reports); err != nil {
		log.Printf("Failed to write PDF response: %v", err)
	}
}

// ExportPayrollCSVHandler godoc
// @Summary Download the driver performance payroll report as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} errorDetail
// @Router /analytics/export-payroll [get]
func ExportPayrollCSVHandler(w http.ResponseWriter, r *http.Request) {
	reports, err := svc.Payroll()
	if err != nil {
		log.Printf("payroll export failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to build payroll export")
		return
	}

	filename := fmt.Sprintf("fleetflow_payroll_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := export.WritePayrollCSV(w, reports); err != nil {
		log.Printf("Failed to write CSV response: %v", err)
	}
}
