package request

import (
	"errors"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/domain/pricing"
)

var (
	ErrNegativeMiles        = errors.New("miles cannot be negative")
	ErrNegativeSquareFeet   = errors.New("square_feet cannot be negative")
	ErrNegativeHelperCount  = errors.New("helper_count cannot be negative")
	ErrNegativeStairFlights = errors.New("stair_flights cannot be negative")
)

// QuoteEstimateRequest is the estimate payload. ItemsNotes is informational
// and never priced.
type QuoteEstimateRequest struct {
	HomeSize     string  `json:"home_size" binding:"required"`
	SquareFeet   int     `json:"square_feet"`
	Miles        float64 `json:"miles"`
	HelperCount  int     `json:"helper_count"`
	StairFlights int     `json:"stair_flights"`
	LongCarry    bool    `json:"long_carry"`
	HasHeavyItem bool    `json:"has_heavy_item"`
	ItemsNotes   string  `json:"items_notes"`
}

// Validate rejects negative numeric inputs. The calculators never clamp;
// bad input stops here.
func (r QuoteEstimateRequest) Validate() error {
	if r.Miles < 0 {
		return ErrNegativeMiles
	}
	if r.SquareFeet < 0 {
		return ErrNegativeSquareFeet
	}
	if r.HelperCount < 0 {
		return ErrNegativeHelperCount
	}
	if r.StairFlights < 0 {
		return ErrNegativeStairFlights
	}
	return nil
}

func (r QuoteEstimateRequest) ToInput() pricing.EstimateInput {
	return pricing.EstimateInput{
		HomeSize:     entities.HomeSize(r.HomeSize),
		SquareFeet:   r.SquareFeet,
		Miles:        r.Miles,
		HelperCount:  r.HelperCount,
		StairFlights: r.StairFlights,
		LongCarry:    r.LongCarry,
		HasHeavyItem: r.HasHeavyItem,
	}
}
