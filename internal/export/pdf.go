package export

import (
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/fleetflow/analytics-api/internal/analytics"
)

var pdfHeader = []string{
	"ID", "Model", "Plate", "Odometer", "Acq. Cost",
	"Revenue", "Maintenance", "Fuel", "Net Profit", "ROI %",
}

// Column widths in mm; landscape A4 body width is 277mm with 10mm margins.
var pdfColWidths = []float64{12, 48, 30, 26, 30, 28, 28, 25, 30, 20}

// WriteAuditPDF renders the fleet audit as a landscape A4 table with a styled
// header, zebra-striped body and a bold totals row. The totals row sums
// revenue, maintenance, fuel and net profit; its ROI cell is left blank.
func WriteAuditPDF(w io.Writer, reports []analytics.AuditReport) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "FleetFlow - Fleet Health & Financial Audit", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Header row
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(41, 54, 74)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range pdfHeader {
		pdf.CellFormat(pdfColWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Body rows
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	var totalRevenue, totalMaintenance, totalFuel, totalNet float64
	for i, r := range reports {
		if i%2 == 0 {
			pdf.SetFillColor(245, 247, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		cells := []string{
			strconv.Itoa(r.VehicleID),
			r.NameModel,
			r.LicensePlate,
			formatFloat(r.Odometer),
			formatMoney(r.AcquisitionCost),
			formatMoney(r.TotalRevenue),
			formatMoney(r.TotalMaintenanceCost),
			formatMoney(r.TotalFuelCost),
			formatMoney(r.NetProfit),
			formatMoney(r.ROIPercent),
		}
		for j, c := range cells {
			align := "R"
			if j == 1 || j == 2 {
				align = "L"
			}
			pdf.CellFormat(pdfColWidths[j], 6, c, "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)

		totalRevenue += r.TotalRevenue
		totalMaintenance += r.TotalMaintenanceCost
		totalFuel += r.TotalFuelCost
		totalNet += r.NetProfit
	}

	// Totals row
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(222, 226, 235)
	totals := []string{
		"", "TOTAL", "", "", "",
		formatMoney(totalRevenue),
		formatMoney(totalMaintenance),
		formatMoney(totalFuel),
		formatMoney(totalNet),
		"",
	}
	for j, c := range totals {
		align := "R"
		if j == 1 {
			align = "L"
		}
		pdf.CellFormat(pdfColWidths[j], 7, c, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	return pdf.Output(w)
}
