package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fleetflow/analytics-api/internal/analytics"
)

// AuditHeader is the column set of the fleet audit CSV.
var AuditHeader = []string{
	"Vehicle ID", "Model", "License Plate", "Status", "Odometer (km)",
	"Acquisition Cost", "Total Revenue", "Maintenance Cost",
	"Fuel Cost", "Net Profit", "ROI (%)",
	"Total Trips", "Avg Safety Score (Drivers)",
}

// PayrollHeader is the column set of the driver payroll CSV.
var PayrollHeader = []string{
	"Driver ID", "Name", "Total Trips", "Completed Trips",
	"Completion Rate (%)", "Revenue Generated", "Safety Score",
	"License Status", "License Expiry",
}

// WriteCSV serialises a header row followed by data rows.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteAuditCSV emits the fleet health and financial audit as CSV.
func WriteAuditCSV(w io.Writer, reports []analytics.AuditReport) error {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.Itoa(r.VehicleID),
			r.NameModel,
			r.LicensePlate,
			string(r.Status),
			formatFloat(r.Odometer),
			formatFloat(r.AcquisitionCost),
			formatMoney(r.TotalRevenue),
			formatMoney(r.TotalMaintenanceCost),
			formatMoney(r.TotalFuelCost),
			formatMoney(r.NetProfit),
			formatMoney(r.ROIPercent),
			strconv.Itoa(r.CompletedTrips),
			r.AvgDriverSafety,
		})
	}
	return WriteCSV(w, AuditHeader, rows)
}

// WritePayrollCSV emits the driver performance report as CSV.
func WritePayrollCSV(w io.Writer, reports []analytics.PayrollReport) error {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.Itoa(r.DriverID),
			r.Name,
			strconv.Itoa(r.TotalTrips),
			strconv.Itoa(r.CompletedTrips),
			formatPercent(r.CompletionRate),
			formatMoney(r.Revenue),
			strconv.Itoa(r.SafetyScore),
			r.LicenseStatus,
			r.LicenseExpiry,
		})
	}
	return WriteCSV(w, PayrollHeader, rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
