package entities

import "time"

// HomeSize categorizes the move by home size. It drives the base flat rate
// and the estimated overtime band.

type HomeSize string

const (
	HomeSizeStudio       HomeSize = "studio"
	HomeSizeOneBedroom   HomeSize = "one_bedroom"
	HomeSizeTwoBedroom   HomeSize = "two_bedroom"
	HomeSizeThreeBedroom HomeSize = "three_bedroom"
)

// QuoteStatus represents the lifecycle of a quote.
//
// Only pending_approval is produced here; approval belongs to a manual
// workflow outside this service.

type QuoteStatus string

const (
	QuoteStatusPendingApproval QuoteStatus = "pending_approval"
)

// Quote is a priced estimate for a moving job, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A quote is immutable after creation: the estimated range is the contract
// the customer saw, and later recalculations write to the Job, never here.

type Quote struct {
	ID            string      `json:"id"`
	HomeSize      HomeSize    `json:"home_size"`
	SquareFeet    int         `json:"square_feet"`
	Miles         float64     `json:"miles"`
	HelperCount   int         `json:"helper_count"`
	StairFlights  int         `json:"stair_flights"`
	LongCarry     bool        `json:"long_carry"`
	HasHeavyItem  bool        `json:"has_heavy_item"`
	EstimatedLow  float64     `json:"estimated_low"`
	EstimatedHigh float64     `json:"estimated_high"`
	Status        QuoteStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}
