package interfaces

import (
	"context"

	"boxertrucks/internal/domain/entities"
)

// IDriverRepository abstracts DynamoDB persistence for Driver.
type IDriverRepository interface {
	Create(ctx context.Context, d entities.Driver) (entities.Driver, error)
	// GetByID returns the zero Driver with a nil error on a lookup miss.
	GetByID(ctx context.Context, id string) (entities.Driver, error)
	List(ctx context.Context) ([]entities.Driver, error)
	// ListByIDs resolves drivers regardless of active flag; missing ids are
	// simply absent from the result.
	ListByIDs(ctx context.Context, ids []string) ([]entities.Driver, error)
	// ListActiveByIDs resolves only active drivers for the given ids.
	ListActiveByIDs(ctx context.Context, ids []string) ([]entities.Driver, error)
}
