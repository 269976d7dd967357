package response

import (
	"time"

	"boxertrucks/internal/usecase"
)

// JobCreatedResponse acknowledges job creation.
type JobCreatedResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// OKResponse acknowledges a lifecycle transition.
type OKResponse struct {
	OK bool `json:"ok"`
}

// JobAssignmentResponse is one worker's pay breakdown on a job.
type JobAssignmentResponse struct {
	DriverID   string  `json:"driver_id"`
	DriverName string  `json:"driver_name"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourly_rate"`
	MilesRate  float64 `json:"miles_rate"`
	HoursLow   float64 `json:"hours_low"`
	HoursHigh  float64 `json:"hours_high"`
	MilesPay   float64 `json:"miles_pay"`
	PayLow     float64 `json:"pay_low"`
	PayHigh    float64 `json:"pay_high"`
}

// JobDetailsResponse is the full job snapshot with resolved driver names.
type JobDetailsResponse struct {
	JobID             string                  `json:"job_id"`
	QuoteID           string                  `json:"quote_id"`
	Status            string                  `json:"status"`
	CustomerName      string                  `json:"customer_name"`
	CustomerPhone     string                  `json:"customer_phone"`
	PickupAddress     string                  `json:"pickup_address"`
	DropoffAddress    string                  `json:"dropoff_address"`
	ScheduledStartAt  *time.Time              `json:"scheduled_start_at,omitempty"`
	StartedAt         *time.Time              `json:"started_at,omitempty"`
	CompletedAt       *time.Time              `json:"completed_at,omitempty"`
	CustomerTotalLow  float64                 `json:"customer_total_low"`
	CustomerTotalHigh float64                 `json:"customer_total_high"`
	PlatformFeeLow    float64                 `json:"platform_fee_low"`
	PlatformFeeHigh   float64                 `json:"platform_fee_high"`
	Assignments       []JobAssignmentResponse `json:"assignments"`
}

func FromJobDetails(d usecase.JobDetails) JobDetailsResponse {
	assignments := make([]JobAssignmentResponse, len(d.Assignments))
	for i, a := range d.Assignments {
		assignments[i] = JobAssignmentResponse{
			DriverID:   a.DriverID,
			DriverName: a.DriverName,
			Role:       string(a.Role),
			HourlyRate: a.HourlyRate,
			MilesRate:  a.MilesRate,
			HoursLow:   a.HoursLow,
			HoursHigh:  a.HoursHigh,
			MilesPay:   a.MilesPay,
			PayLow:     a.PayLow,
			PayHigh:    a.PayHigh,
		}
	}

	return JobDetailsResponse{
		JobID:             d.Job.ID,
		QuoteID:           d.Job.QuoteID,
		Status:            string(d.Job.Status),
		CustomerName:      d.Job.CustomerName,
		CustomerPhone:     d.Job.CustomerPhone,
		PickupAddress:     d.Job.PickupAddress,
		DropoffAddress:    d.Job.DropoffAddress,
		ScheduledStartAt:  d.Job.ScheduledStartAt,
		StartedAt:         d.Job.StartedAt,
		CompletedAt:       d.Job.CompletedAt,
		CustomerTotalLow:  d.Job.CustomerTotalLow,
		CustomerTotalHigh: d.Job.CustomerTotalHigh,
		PlatformFeeLow:    d.Job.PlatformFeeLow,
		PlatformFeeHigh:   d.Job.PlatformFeeHigh,
		Assignments:       assignments,
	}
}
