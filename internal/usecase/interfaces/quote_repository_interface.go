package interfaces

import (
	"context"

	"boxertrucks/internal/domain/entities"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mock_interfaces boxertrucks/internal/usecase/interfaces IQuoteRepository,IJobRepository,IDriverRepository,IJobAssignmentRepository,ITimeProvider

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quotes are immutable after creation; there is no update path.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	// GetByID returns the zero Quote with a nil error on a lookup miss.
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}
