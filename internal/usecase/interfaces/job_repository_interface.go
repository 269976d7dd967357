package interfaces

import (
	"context"

	"boxertrucks/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	// GetByID returns the zero Job with a nil error on a lookup miss.
	GetByID(ctx context.Context, id string) (entities.Job, error)
	// Update replaces the stored job. The job must already exist.
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
}
