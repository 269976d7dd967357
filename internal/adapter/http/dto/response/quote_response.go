package response

import (
	"time"

	"boxertrucks/internal/domain/entities"
	"boxertrucks/internal/domain/pricing"
	"boxertrucks/internal/usecase"
)

// QuoteEstimateResponse reports the priced range plus the decomposition the
// customer-facing summary is built from.
type QuoteEstimateResponse struct {
	QuoteID                    string  `json:"quote_id"`
	Status                     string  `json:"status"`
	EstimatedLow               float64 `json:"estimated_low"`
	EstimatedHigh              float64 `json:"estimated_high"`
	BaseFlatRate               float64 `json:"base_flat_rate"`
	MileageFee                 float64 `json:"mileage_fee"`
	EstimatedOvertimeHoursLow  float64 `json:"estimated_overtime_hours_low"`
	EstimatedOvertimeHoursHigh float64 `json:"estimated_overtime_hours_high"`
	Summary                    string  `json:"summary"`
}

func FromEstimateResult(r usecase.EstimateResult) QuoteEstimateResponse {
	return QuoteEstimateResponse{
		QuoteID:                    r.Quote.ID,
		Status:                     string(r.Quote.Status),
		EstimatedLow:               r.Quote.EstimatedLow,
		EstimatedHigh:              r.Quote.EstimatedHigh,
		BaseFlatRate:               r.Breakdown.BaseFlatRate,
		MileageFee:                 pricing.RoundMoney(r.Breakdown.MileageFee),
		EstimatedOvertimeHoursLow:  r.Breakdown.OvertimeHoursLow,
		EstimatedOvertimeHoursHigh: r.Breakdown.OvertimeHoursHigh,
		Summary:                    r.Summary,
	}
}

// QuoteResponse is the stored quote as the customer saw it.
type QuoteResponse struct {
	ID            string    `json:"id"`
	HomeSize      string    `json:"home_size"`
	SquareFeet    int       `json:"square_feet"`
	Miles         float64   `json:"miles"`
	HelperCount   int       `json:"helper_count"`
	StairFlights  int       `json:"stair_flights"`
	LongCarry     bool      `json:"long_carry"`
	HasHeavyItem  bool      `json:"has_heavy_item"`
	EstimatedLow  float64   `json:"estimated_low"`
	EstimatedHigh float64   `json:"estimated_high"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		HomeSize:      string(q.HomeSize),
		SquareFeet:    q.SquareFeet,
		Miles:         q.Miles,
		HelperCount:   q.HelperCount,
		StairFlights:  q.StairFlights,
		LongCarry:     q.LongCarry,
		HasHeavyItem:  q.HasHeavyItem,
		EstimatedLow:  q.EstimatedLow,
		EstimatedHigh: q.EstimatedHigh,
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
	}
}
