package models

import "time"

// Driver represents a fleet driver. Status is a free-form string in the
// operational system ("ON_DUTY", "OFF_DUTY", ...) and is kept unconstrained
// here to match whatever the store holds.
type Driver struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	LicenseExpiryDate *time.Time `json:"licenseExpiryDate"`
	Status            string     `json:"status"`
	SafetyScore       int        `json:"safetyScore"`
}
