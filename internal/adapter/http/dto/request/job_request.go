package request

import (
	"errors"
	"time"

	"boxertrucks/internal/usecase"
)

// MaxHelperIDs bounds the crew size. Assignment replaces the whole worker
// set in one DynamoDB transaction (deletes plus puts), and a transaction
// carries at most 100 items.
const MaxHelperIDs = 20

var ErrTooManyHelpers = errors.New("too many helpers")

// CreateJobRequest commits a quote into a job for a named customer.
type CreateJobRequest struct {
	QuoteID          string     `json:"quote_id" binding:"required"`
	CustomerName     string     `json:"customer_name" binding:"required"`
	CustomerPhone    string     `json:"customer_phone" binding:"required"`
	PickupAddress    string     `json:"pickup_address" binding:"required"`
	DropoffAddress   string     `json:"dropoff_address" binding:"required"`
	ScheduledStartAt *time.Time `json:"scheduled_start_at"`
}

func (r CreateJobRequest) ToCommand() usecase.CreateJobCommand {
	return usecase.CreateJobCommand{
		QuoteID:          r.QuoteID,
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		PickupAddress:    r.PickupAddress,
		DropoffAddress:   r.DropoffAddress,
		ScheduledStartAt: r.ScheduledStartAt,
	}
}

// AssignJobRequest names the worker set for a job.
type AssignJobRequest struct {
	MainDriverID string   `json:"main_driver_id" binding:"required"`
	HelperIDs    []string `json:"helper_ids"`
}

// Validate caps the helper list before any id resolution happens.
func (r AssignJobRequest) Validate() error {
	if len(r.HelperIDs) > MaxHelperIDs {
		return ErrTooManyHelpers
	}
	return nil
}
