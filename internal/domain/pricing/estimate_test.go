package pricing

import (
	"testing"

	"boxertrucks/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestComputeEstimate_StudioNoExtras(t *testing.T) {
	r := DefaultRates()

	b := ComputeEstimate(r, EstimateInput{
		HomeSize: entities.HomeSizeStudio,
		Miles:    10,
	})

	assert.Equal(t, 250.0, b.BaseFlatRate)
	assert.Equal(t, 20.0, b.RoundTripMiles)
	assert.Equal(t, 80.0, b.MileageFee) // 20 mi at 4.00, no helpers
	assert.Equal(t, 0.0, b.AddonsLow)
	assert.Equal(t, 0.0, b.AddonsHigh)
	assert.Equal(t, 0.0, b.OvertimeHoursLow)
	assert.Equal(t, 1.2, b.OvertimeHoursHigh)
	assert.Equal(t, 75.0, b.OvertimeRatePerHour)
	assert.Equal(t, 330.0, b.EstimatedLow)
	assert.Equal(t, 420.0, b.EstimatedHigh)
}

func TestComputeEstimate_TwoBedroomWithExtras(t *testing.T) {
	r := DefaultRates()

	b := ComputeEstimate(r, EstimateInput{
		HomeSize:     entities.HomeSizeTwoBedroom,
		Miles:        10,
		HelperCount:  1,
		StairFlights: 2,
		LongCarry:    true,
		HasHeavyItem: true,
	})

	assert.Equal(t, 425.0, b.BaseFlatRate)
	assert.Equal(t, 140.0, b.MileageFee) // 20 mi at 4.00 + 1 helper at 3.00
	assert.Equal(t, 175.0, b.AddonsLow)
	assert.Equal(t, 250.0, b.AddonsHigh)
	assert.Equal(t, 1.0, b.OvertimeHoursLow)
	assert.Equal(t, 2.5, b.OvertimeHoursHigh)
	assert.Equal(t, 120.0, b.OvertimeRatePerHour)
	assert.Equal(t, 860.0, b.EstimatedLow)   // 425+140+175+120
	assert.Equal(t, 1115.0, b.EstimatedHigh) // 425+140+250+300
}

func TestComputeEstimate_UnknownHomeSize(t *testing.T) {
	r := DefaultRates()

	b := ComputeEstimate(r, EstimateInput{
		HomeSize: entities.HomeSize("mansion"),
		Miles:    5,
	})

	assert.Equal(t, 0.0, b.BaseFlatRate)
	assert.Equal(t, 1.2, b.OvertimeHoursLow) // default band scaled for zero helpers
	assert.Equal(t, 2.3, b.OvertimeHoursHigh)
}

func TestComputeEstimate_SquareFeetIsInformational(t *testing.T) {
	r := DefaultRates()

	small := ComputeEstimate(r, EstimateInput{HomeSize: entities.HomeSizeStudio, Miles: 10, SquareFeet: 100})
	large := ComputeEstimate(r, EstimateInput{HomeSize: entities.HomeSizeStudio, Miles: 10, SquareFeet: 5000})

	assert.Equal(t, small, large)
}
