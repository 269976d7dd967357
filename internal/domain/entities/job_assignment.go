package entities

import "time"

// AssignmentRole distinguishes the worker operating the vehicle from the
// assisting helpers. Pay composition differs per role: the main driver owns
// the base rate, add-ons, and overtime; helpers are pure hourly plus mileage.

type AssignmentRole string

const (
	AssignmentRoleMainDriver AssignmentRole = "main_driver"
	AssignmentRoleHelper     AssignmentRole = "helper"
)

// JobAssignment is one worker's committed pay on one job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// The pay breakdown is stored per row for transparency. HoursLow/High and
// PayLow/High carry a range until completion collapses both to a single
// settled value.

type JobAssignment struct {
	ID         string         `json:"id"`
	JobID      string         `json:"job_id"`
	DriverID   string         `json:"driver_id"`
	Role       AssignmentRole `json:"role"`
	HourlyRate float64        `json:"hourly_rate"`
	MilesRate  float64        `json:"miles_rate"`
	HoursLow   float64        `json:"hours_low"`
	HoursHigh  float64        `json:"hours_high"`
	MilesPay   float64        `json:"miles_pay"`
	PayLow     float64        `json:"pay_low"`
	PayHigh    float64        `json:"pay_high"`
	CreatedAt  time.Time      `json:"created_at"`
}
