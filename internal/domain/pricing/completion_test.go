package pricing

import (
	"testing"
	"time"

	"boxertrucks/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleCompletion_CollapsesRanges(t *testing.T) {
	r := DefaultRates()
	q := entities.Quote{
		HomeSize: entities.HomeSizeTwoBedroom,
		Miles:    10,
	}
	assignments := []entities.JobAssignment{
		{ID: "a-1", DriverID: "drv-1", Role: entities.AssignmentRoleMainDriver, HoursLow: 4.0, HoursHigh: 5.5, PayLow: 580, PayHigh: 692.5},
		{ID: "a-2", DriverID: "hlp-1", Role: entities.AssignmentRoleHelper, HoursLow: 4.0, HoursHigh: 5.5, PayLow: 240, PayHigh: 307.5},
	}

	s := SettleCompletion(r, q, assignments, 2*time.Hour+10*time.Minute)

	assert.Equal(t, 2.25, s.ActualHours)
	require.Len(t, s.Assignments, 2)

	main := s.Assignments[0]
	assert.Equal(t, "a-1", main.ID)
	assert.Equal(t, 2.2, main.HoursLow) // 2.25 stored at tenth precision, half to even
	assert.Equal(t, 2.2, main.HoursHigh)
	assert.Equal(t, 80.0, main.MilesPay)
	// Under the included hours no overtime bills: base + miles only.
	assert.Equal(t, 505.0, main.PayLow)
	assert.Equal(t, 505.0, main.PayHigh)

	helper := s.Assignments[1]
	assert.Equal(t, 2.2, helper.HoursLow)
	assert.Equal(t, 60.0, helper.MilesPay)
	assert.Equal(t, 161.25, helper.PayLow) // 2.25*45 + 60
	assert.Equal(t, 161.25, helper.PayHigh)

	assert.Equal(t, 666.25, s.TotalPayouts)
	assert.Equal(t, 725.0, s.CustomerTotal) // 666.25 / 0.92 rounded up to 5
	assert.Equal(t, 58.75, s.PlatformFee)
}

func TestSettleCompletion_OvertimePastIncludedHours(t *testing.T) {
	r := DefaultRates()
	q := entities.Quote{
		HomeSize: entities.HomeSizeStudio,
		Miles:    0,
	}
	assignments := []entities.JobAssignment{
		{ID: "a-1", DriverID: "drv-1", Role: entities.AssignmentRoleMainDriver},
	}

	s := SettleCompletion(r, q, assignments, 4*time.Hour+5*time.Minute)

	// 4h05m rounds up to 4.25, 1.25 hours past the included 3.
	assert.Equal(t, 4.25, s.ActualHours)
	assert.Equal(t, 343.75, s.Assignments[0].PayLow) // 250 + 1.25*75
}

func TestSettleCompletion_MainDriverKeepsHighAddons(t *testing.T) {
	r := DefaultRates()
	q := entities.Quote{
		HomeSize:     entities.HomeSizeStudio,
		Miles:        0,
		HasHeavyItem: true,
	}
	assignments := []entities.JobAssignment{
		{ID: "a-1", DriverID: "drv-1", Role: entities.AssignmentRoleMainDriver},
	}

	s := SettleCompletion(r, q, assignments, 2*time.Hour)

	// Heavy-item fee settles at its high figure, never the low one.
	assert.Equal(t, 400.0, s.Assignments[0].PayLow) // 250 base + 150 heavy high
}

func TestSettleCompletion_NoAssignments(t *testing.T) {
	r := DefaultRates()

	s := SettleCompletion(r, entities.Quote{HomeSize: entities.HomeSizeStudio}, nil, time.Hour)

	assert.Equal(t, 1.0, s.ActualHours)
	assert.Empty(t, s.Assignments)
	assert.Equal(t, 0.0, s.TotalPayouts)
	assert.Equal(t, 0.0, s.CustomerTotal)
	assert.Equal(t, 0.0, s.PlatformFee)
}
