package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/usecase/interfaces"
)

var (
	ErrInvalidDriverName = errors.New("invalid driver name")
)

// IDriverUseCase exposes worker registration and listing. No computed
// fields here; drivers exist so assignment has a worker pool to draw from.
type IDriverUseCase interface {
	Create(ctx context.Context, fullName, phone string, vehicleType entities.VehicleType) (entities.Driver, error)
	List(ctx context.Context) ([]entities.Driver, error)
}

type DriverUseCase struct {
	repo interfaces.IDriverRepository
	time interfaces.ITimeProvider
}

var _ IDriverUseCase = (*DriverUseCase)(nil)

func NewDriverUseCase(repo interfaces.IDriverRepository, time interfaces.ITimeProvider) *DriverUseCase {
	return &DriverUseCase{repo: repo, time: time}
}

func (u *DriverUseCase) Create(ctx context.Context, fullName, phone string, vehicleType entities.VehicleType) (entities.Driver, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return entities.Driver{}, ErrInvalidDriverName
	}
	if vehicleType == "" {
		vehicleType = entities.VehicleTypeNone
	}

	d := entities.Driver{
		ID:          uuid.NewString(),
		FullName:    fullName,
		Phone:       strings.TrimSpace(phone),
		VehicleType: vehicleType,
		IsActive:    true,
		CreatedAt:   u.time.Now(),
	}
	return u.repo.Create(ctx, d)
}

// List returns all drivers ordered by full name. The scan order coming
// out of DynamoDB is arbitrary, so the sort happens here.
func (u *DriverUseCase) List(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(drivers, func(i, j int) bool {
		return drivers[i].FullName < drivers[j].FullName
	})
	return drivers, nil
}
