package request

// DriverCreateRequest registers a worker. VehicleType defaults to "none",
// which keeps the driver helper-only until a qualifying vehicle is set.
type DriverCreateRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
}
