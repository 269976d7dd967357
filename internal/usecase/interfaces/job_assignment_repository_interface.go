package interfaces

import (
	"context"

	"boxertrucks/internal/domain/entities"
)

// IJobAssignmentRepository abstracts DynamoDB persistence for JobAssignment.
//
// A job owns its assignment set: re-assignment replaces the whole set, and
// ReplaceForJob must make the delete-then-insert atomic so readers never see
// a partially replaced set.
type IJobAssignmentRepository interface {
	// ReplaceForJob discards any existing assignments for the job and writes
	// the new set in a single transaction.
	ReplaceForJob(ctx context.Context, jobID string, assignments []entities.JobAssignment) error
	ListByJobID(ctx context.Context, jobID string) ([]entities.JobAssignment, error)
	// UpdateMany rewrites existing assignment rows in a single transaction.
	UpdateMany(ctx context.Context, assignments []entities.JobAssignment) error
}
