package pricing

import "boxertrucks/internal/domain/entities"

// EstimateInput is the request description an estimate is priced from.
// SquareFeet is informational only and does not enter the price. Callers
// must reject negative numeric inputs before invoking the calculator.
type EstimateInput struct {
	HomeSize     entities.HomeSize
	SquareFeet   int
	Miles        float64
	HelperCount  int
	StairFlights int
	LongCarry    bool
	HasHeavyItem bool
}

// EstimateBreakdown is the full pricing decomposition of an estimate.
// EstimatedLow/High are rounded up to the nearest 5; the intermediate
// figures are unrounded so callers can present them as they choose.
type EstimateBreakdown struct {
	BaseFlatRate        float64
	RoundTripMiles      float64
	MileageFee          float64
	AddonsLow           float64
	AddonsHigh          float64
	OvertimeHoursLow    float64
	OvertimeHoursHigh   float64
	OvertimeRatePerHour float64
	EstimatedLow        float64
	EstimatedHigh       float64
}

// ComputeEstimate turns a request description into a price range.
//
// Mileage is billed round trip (going + coming) at a combined per-mile rate
// for the driver plus every helper. Overtime hours come from the home-size
// band scaled by the helper count, costed at the combined hourly rate.
func ComputeEstimate(r Rates, in EstimateInput) EstimateBreakdown {
	baseRate := r.BaseFlatRate(in.HomeSize)

	roundTripMiles := in.Miles * 2
	mileageFee := roundTripMiles * (r.DriverMilesRate + float64(in.HelperCount)*r.HelperMilesRate)

	addons := AddonInput{
		StairFlights: in.StairFlights,
		LongCarry:    in.LongCarry,
		HasHeavyItem: in.HasHeavyItem,
	}
	addonsLow := r.AddonsLow(addons)
	addonsHigh := r.AddonsHigh(addons)

	overtimeLow, overtimeHigh := r.OvertimeRangeHours(in.HomeSize, in.HelperCount)
	overtimeRatePerHour := r.DriverHourlyRate + float64(in.HelperCount)*r.HelperHourlyRate

	estimatedLow := baseRate + mileageFee + addonsLow + overtimeLow*overtimeRatePerHour
	estimatedHigh := baseRate + mileageFee + addonsHigh + overtimeHigh*overtimeRatePerHour

	return EstimateBreakdown{
		BaseFlatRate:        baseRate,
		RoundTripMiles:      roundTripMiles,
		MileageFee:          mileageFee,
		AddonsLow:           addonsLow,
		AddonsHigh:          addonsHigh,
		OvertimeHoursLow:    overtimeLow,
		OvertimeHoursHigh:   overtimeHigh,
		OvertimeRatePerHour: overtimeRatePerHour,
		EstimatedLow:        RoundUpToNearest5(estimatedLow),
		EstimatedHigh:       RoundUpToNearest5(estimatedHigh),
	}
}
