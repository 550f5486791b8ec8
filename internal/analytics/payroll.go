package analytics

import "github.com/fleetflow/analytics-api/internal/models"

// PayrollReport is one driver performance row for the payroll export.
type PayrollReport struct {
	DriverID       int     `json:"driverId"`
	Name           string  `json:"name"`
	TotalTrips     int     `json:"totalTrips"`
	CompletedTrips int     `json:"completedTrips"`
	CompletionRate float64 `json:"completionRate"`
	Revenue        float64 `json:"revenue"`
	SafetyScore    int     `json:"safetyScore"`
	LicenseStatus  string  `json:"licenseStatus"`
	LicenseExpiry  string  `json:"licenseExpiry"`
}

// Payroll computes per-driver trip completion and revenue figures. A driver
// with no trips has a 0 completion rate rather than an error.
func (s *Service) Payroll() ([]PayrollReport, error) {
	drivers, err := s.drivers.GetAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	results := make([]PayrollReport, 0, len(drivers))
	for _, d := range drivers {
		totalTrips, err := s.trips.CountByDriver(d.ID)
		if err != nil {
			return nil, err
		}
		completed, err := s.trips.CountByDriverAndStatus(d.ID, models.TripCompleted)
		if err != nil {
			return nil, err
		}
		revenue, err := s.trips.SumRevenueByDriver(d.ID, models.TripCompleted)
		if err != nil {
			return nil, err
		}

		rate := 0.0
		if totalTrips > 0 {
			rate = round1(float64(completed) / float64(totalTrips) * 100)
		}

		licenseStatus := "VALID"
		licenseExpiry := "N/A"
		if d.LicenseExpiryDate != nil {
			if d.LicenseExpiryDate.Before(now) {
				licenseStatus = "EXPIRED"
			}
			licenseExpiry = d.LicenseExpiryDate.Format("02-01-2006")
		}

		results = append(results, PayrollReport{
			DriverID:       d.ID,
			Name:           d.Name,
			TotalTrips:     totalTrips,
			CompletedTrips: completed,
			CompletionRate: rate,
			Revenue:        round2(revenue),
			SafetyScore:    d.SafetyScore,
			LicenseStatus:  licenseStatus,
			LicenseExpiry:  licenseExpiry,
		})
	}
	return results, nil
}
