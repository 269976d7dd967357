package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/domain/pricing"
	"boxertrucks/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// IQuoteUseCase exposes estimate operations.
//
// CreateEstimate prices a request description and persists the resulting
// quote. Numeric inputs are assumed non-negative; the HTTP layer rejects
// negative values before invoking the use case.

type IQuoteUseCase interface {
	CreateEstimate(ctx context.Context, in pricing.EstimateInput) (EstimateResult, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

// EstimateResult pairs the persisted quote with its pricing decomposition
// and a human-readable summary of how the range was built.
type EstimateResult struct {
	Quote     entities.Quote
	Breakdown pricing.EstimateBreakdown
	Summary   string
}

type QuoteUseCase struct {
	repo  interfaces.IQuoteRepository
	rates pricing.Rates
	time  interfaces.ITimeProvider
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, rates pricing.Rates, time interfaces.ITimeProvider) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, rates: rates, time: time}
}

func (u *QuoteUseCase) CreateEstimate(ctx context.Context, in pricing.EstimateInput) (EstimateResult, error) {
	breakdown := pricing.ComputeEstimate(u.rates, in)

	quote := entities.Quote{
		ID:            uuid.NewString(),
		HomeSize:      in.HomeSize,
		SquareFeet:    in.SquareFeet,
		Miles:         in.Miles,
		HelperCount:   in.HelperCount,
		StairFlights:  in.StairFlights,
		LongCarry:     in.LongCarry,
		HasHeavyItem:  in.HasHeavyItem,
		EstimatedLow:  breakdown.EstimatedLow,
		EstimatedHigh: breakdown.EstimatedHigh,
		Status:        entities.QuoteStatusPendingApproval,
		CreatedAt:     u.time.Now(),
	}

	created, err := u.repo.Create(ctx, quote)
	if err != nil {
		return EstimateResult{}, err
	}

	return EstimateResult{
		Quote:     created,
		Breakdown: breakdown,
		Summary:   buildSummary(in, breakdown),
	}, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// buildSummary reports the base rate, mileage, overtime range, and which
// add-ons applied, in one line a dispatcher can read back to a customer.
func buildSummary(in pricing.EstimateInput, b pricing.EstimateBreakdown) string {
	return fmt.Sprintf(
		"%s base: $%.0f | Mileage (round trip): $%.2f (%.1f mi) | Overtime: %.1f–%.1f hrs @ $%.0f/hr | Add-ons: stairs(%d), long-carry(%t), heavy(%t)",
		homeSizeLabel(in.HomeSize),
		b.BaseFlatRate,
		b.MileageFee,
		b.RoundTripMiles,
		b.OvertimeHoursLow,
		b.OvertimeHoursHigh,
		b.OvertimeRatePerHour,
		in.StairFlights,
		in.LongCarry,
		in.HasHeavyItem,
	)
}

func homeSizeLabel(size entities.HomeSize) string {
	switch size {
	case entities.HomeSizeStudio:
		return "Studio"
	case entities.HomeSizeOneBedroom:
		return "OneBedroom"
	case entities.HomeSizeTwoBedroom:
		return "TwoBedroom"
	case entities.HomeSizeThreeBedroom:
		return "ThreeBedroom"
	default:
		return string(size)
	}
}
