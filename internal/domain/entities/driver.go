package entities

import "time"

// VehicleType categorizes a driver's vehicle. Only box trucks, vans, and
// pickups qualify for the main-driver role.

type VehicleType string

const (
	VehicleTypeNone     VehicleType = "none"
	VehicleTypeBoxTruck VehicleType = "box_truck"
	VehicleTypeVan      VehicleType = "van"
	VehicleTypePickup   VehicleType = "pickup"
)

// EligibleForMainDriver reports whether the vehicle qualifies its driver to
// lead a job.
func (v VehicleType) EligibleForMainDriver() bool {
	switch v {
	case VehicleTypeBoxTruck, VehicleTypeVan, VehicleTypePickup:
		return true
	}
	return false
}

// Driver is a worker who can be assigned to jobs.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Only active drivers may be assigned.

type Driver struct {
	ID          string      `json:"id"`
	FullName    string      `json:"full_name"`
	Phone       string      `json:"phone,omitempty"`
	VehicleType VehicleType `json:"vehicle_type"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}
