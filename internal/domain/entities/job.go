package entities

import "time"

// JobStatus represents the lifecycle of a moving job.
//
// Domain notes:
//   - approved and paid have no producing transition in this service; they
//     belong to manual approval/payment workflows.
//   - cancelled is reachable from any non-terminal state.

type JobStatus string

const (
	JobStatusPendingApproval JobStatus = "pending_approval"
	JobStatusApproved        JobStatus = "approved"
	JobStatusAssigned        JobStatus = "assigned"
	JobStatusInProgress      JobStatus = "in_progress"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusPaid            JobStatus = "paid"
	JobStatusCancelled       JobStatus = "cancelled"
)

// Terminal reports whether the status admits no further transition.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusPaid, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a committed unit of work referencing exactly one Quote.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StartedAt and CompletedAt are server-controlled: only the start and
// complete transitions may set them. The customer-total and platform-fee
// snapshot fields hold a low/high range until completion collapses them
// into a single settled figure.

type Job struct {
	ID                string     `json:"id"`
	QuoteID           string     `json:"quote_id"`
	CustomerName      string     `json:"customer_name"`
	CustomerPhone     string     `json:"customer_phone"`
	PickupAddress     string     `json:"pickup_address"`
	DropoffAddress    string     `json:"dropoff_address"`
	ScheduledStartAt  *time.Time `json:"scheduled_start_at,omitempty"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Status            JobStatus  `json:"status"`
	CustomerTotalLow  float64    `json:"customer_total_low"`
	CustomerTotalHigh float64    `json:"customer_total_high"`
	PlatformFeeLow    float64    `json:"platform_fee_low"`
	PlatformFeeHigh   float64    `json:"platform_fee_high"`
	CreatedAt         time.Time  `json:"created_at"`
}

// CanAssign reports whether worker assignment may run. Re-assignment of a
// job that is already underway, settled, or cancelled is rejected.
func (j Job) CanAssign() bool {
	switch j.Status {
	case JobStatusPendingApproval, JobStatusApproved, JobStatusAssigned:
		return true
	}
	return false
}

func (j Job) CanStart() bool {
	return j.Status == JobStatusAssigned || j.Status == JobStatusApproved
}

func (j Job) CanComplete() bool {
	return j.Status == JobStatusInProgress
}

func (j Job) CanCancel() bool {
	return !j.Status.Terminal()
}
