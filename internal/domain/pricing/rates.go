package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"boxertrucks/internal/domain/entities"
)

// OvertimeBand is the estimated overtime-hour range for a home size before
// the helper-count factor is applied.
type OvertimeBand struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// HelperCountFactors scales an overtime band by the number of helpers on
// the crew: more helpers, fewer expected hours.
type HelperCountFactors struct {
	NoHelpers   float64 `yaml:"no_helpers"`
	OneHelper   float64 `yaml:"one_helper"`
	TwoHelpers  float64 `yaml:"two_helpers"`
	ThreeOrMore float64 `yaml:"three_or_more"`
}

// Factor resolves the multiplier for a helper count. Negative counts are
// treated as zero.
func (f HelperCountFactors) Factor(helpers int) float64 {
	switch {
	case helpers <= 0:
		return f.NoHelpers
	case helpers == 1:
		return f.OneHelper
	case helpers == 2:
		return f.TwoHelpers
	default:
		return f.ThreeOrMore
	}
}

// Rates is the immutable pricing configuration injected into every
// calculator. Tests vary rates by constructing their own value; production
// wiring uses DefaultRates, optionally overridden from a YAML file.
type Rates struct {
	DriverHourlyRate float64 `yaml:"driver_hourly_rate"`
	HelperHourlyRate float64 `yaml:"helper_hourly_rate"`

	DriverMilesRate float64 `yaml:"driver_miles_rate"`
	HelperMilesRate float64 `yaml:"helper_miles_rate"`

	StairsPerFlight  float64 `yaml:"stairs_per_flight"`
	LongCarryFee     float64 `yaml:"long_carry_fee"`
	HeavyItemFeeLow  float64 `yaml:"heavy_item_fee_low"`
	HeavyItemFeeHigh float64 `yaml:"heavy_item_fee_high"`

	// IncludedHoursForDriver is covered by the base flat rate before overtime
	// billing starts. It applies to the main driver only.
	IncludedHoursForDriver float64 `yaml:"included_hours_for_driver"`

	// PlatformFeePercent is taken from the customer-facing total, not the
	// worker payout. See GrossUp.
	PlatformFeePercent float64 `yaml:"platform_fee_percent"`

	BaseFlatRates map[entities.HomeSize]float64 `yaml:"base_flat_rates"`

	OvertimeBands map[entities.HomeSize]OvertimeBand `yaml:"overtime_bands"`
	// DefaultOvertimeBand is used for home sizes without an explicit band.
	DefaultOvertimeBand OvertimeBand `yaml:"default_overtime_band"`

	HelperFactors HelperCountFactors `yaml:"helper_factors"`
}

// DefaultRates returns the v1 pricing rules.
func DefaultRates() Rates {
	return Rates{
		DriverHourlyRate: 75,
		HelperHourlyRate: 45,

		DriverMilesRate: 4.00, // diesel
		HelperMilesRate: 3.00, // gas

		StairsPerFlight:  25,
		LongCarryFee:     50,
		HeavyItemFeeLow:  75,
		HeavyItemFeeHigh: 150,

		IncludedHoursForDriver: 3.0,
		PlatformFeePercent:     0.08,

		BaseFlatRates: map[entities.HomeSize]float64{
			entities.HomeSizeStudio:       250,
			entities.HomeSizeOneBedroom:   325,
			entities.HomeSizeTwoBedroom:   425,
			entities.HomeSizeThreeBedroom: 525,
		},

		OvertimeBands: map[entities.HomeSize]OvertimeBand{
			entities.HomeSizeStudio:       {Low: 0.0, High: 1.0},
			entities.HomeSizeOneBedroom:   {Low: 0.5, High: 1.5},
			entities.HomeSizeTwoBedroom:   {Low: 1.0, High: 2.5},
			entities.HomeSizeThreeBedroom: {Low: 1.5, High: 3.5},
		},
		DefaultOvertimeBand: OvertimeBand{Low: 1.0, High: 2.0},

		HelperFactors: HelperCountFactors{
			NoHelpers:   1.15,
			OneHelper:   1.00,
			TwoHelpers:  0.90,
			ThreeOrMore: 0.85,
		},
	}
}

// LoadRates reads a full rate table from a YAML file.
func LoadRates(path string) (Rates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rates{}, fmt.Errorf("failed to read rates file: %w", err)
	}

	var r Rates
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rates{}, fmt.Errorf("failed to parse rates file: %w", err)
	}
	return r, nil
}

// BaseFlatRate returns the flat rate covering the included hours for the
// home size. Unknown sizes price at 0.
func (r Rates) BaseFlatRate(size entities.HomeSize) float64 {
	return r.BaseFlatRates[size]
}

// OvertimeRangeHours estimates the overtime-hour range for the home size,
// scaled by the configured helper-count factor.
func (r Rates) OvertimeRangeHours(size entities.HomeSize, helpers int) (low, high float64) {
	factor := r.HelperFactors.Factor(helpers)

	band, ok := r.OvertimeBands[size]
	if !ok {
		band = r.DefaultOvertimeBand
	}

	return RoundTenth(band.Low * factor), RoundTenth(band.High * factor)
}

// AddonInput carries the quote flags that drive add-on fees.
type AddonInput struct {
	StairFlights int
	LongCarry    bool
	HasHeavyItem bool
}

// AddonsLow totals add-on fees with the heavy-item fee at its lower bound.
func (r Rates) AddonsLow(in AddonInput) float64 {
	total := float64(in.StairFlights) * r.StairsPerFlight
	if in.LongCarry {
		total += r.LongCarryFee
	}
	if in.HasHeavyItem {
		total += r.HeavyItemFeeLow
	}
	return total
}

// AddonsHigh totals add-on fees with the heavy-item fee at its upper bound.
func (r Rates) AddonsHigh(in AddonInput) float64 {
	total := float64(in.StairFlights) * r.StairsPerFlight
	if in.LongCarry {
		total += r.LongCarryFee
	}
	if in.HasHeavyItem {
		total += r.HeavyItemFeeHigh
	}
	return total
}

// GrossUp converts a worker payout total into the customer-facing total and
// the platform fee. The total is inflated so that subtracting the fee still
// covers full worker payouts: the fee is a percentage of the customer total,
// never a deduction from worker pay.
func (r Rates) GrossUp(payouts float64) (customerTotal, platformFee float64) {
	customerTotal = RoundUpToNearest5(payouts / (1 - r.PlatformFeePercent))
	platformFee = RoundMoney(customerTotal - payouts)
	return customerTotal, platformFee
}
