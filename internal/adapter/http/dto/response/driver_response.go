package response

import "boxertrucks/internal/domain/entities"

type DriverResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone,omitempty"`
	VehicleType string `json:"vehicle_type"`
	IsActive    bool   `json:"is_active"`
}

func FromDriver(d entities.Driver) DriverResponse {
	return DriverResponse{
		ID:          d.ID,
		FullName:    d.FullName,
		Phone:       d.Phone,
		VehicleType: string(d.VehicleType),
		IsActive:    d.IsActive,
	}
}

func FromDrivers(drivers []entities.Driver) []DriverResponse {
	out := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		out[i] = FromDriver(d)
	}
	return out
}
