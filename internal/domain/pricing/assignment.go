package pricing

import "boxertrucks/internal/domain/entities"

// PlannedAssignment is one worker's computed pay for a job, before it is
// given an identity and persisted.
type PlannedAssignment struct {
	DriverID   string
	Role       entities.AssignmentRole
	HourlyRate float64
	MilesRate  float64
	HoursLow   float64
	HoursHigh  float64
	MilesPay   float64
	PayLow     float64
	PayHigh    float64
}

// AssignmentPlan is the committed pay/price range for a worker set.
type AssignmentPlan struct {
	// Assignments holds the main driver first, then helpers in input order.
	Assignments []PlannedAssignment

	PayoutsLow  float64
	PayoutsHigh float64

	CustomerTotalLow  float64
	CustomerTotalHigh float64
	PlatformFeeLow    float64
	PlatformFeeHigh   float64
}

// PlanAssignments turns a quote plus a chosen worker set into committed pay
// figures per worker and gross totals for the job.
//
// The overtime band is recomputed against the helper count actually being
// assigned, which may differ from the count the customer was quoted with.
// Total estimated hours are the included hours plus that band; helpers bill
// every hour, the main driver only the hours past the included ones (the
// base flat rate covers the rest).
func PlanAssignments(r Rates, q entities.Quote, mainDriverID string, helperIDs []string) AssignmentPlan {
	helperCount := len(helperIDs)
	roundTripMiles := q.Miles * 2

	otLow, otHigh := r.OvertimeRangeHours(q.HomeSize, helperCount)
	hoursLow := r.IncludedHoursForDriver + otLow
	hoursHigh := r.IncludedHoursForDriver + otHigh

	assignments := make([]PlannedAssignment, 0, helperCount+1)

	addons := AddonInput{
		StairFlights: q.StairFlights,
		LongCarry:    q.LongCarry,
		HasHeavyItem: q.HasHeavyItem,
	}
	baseRate := r.BaseFlatRate(q.HomeSize)
	addonsLow := r.AddonsLow(addons)
	addonsHigh := r.AddonsHigh(addons)

	driverMilesPay := RoundMoney(roundTripMiles * r.DriverMilesRate)
	driverOvertimeLow := max(0, hoursLow-r.IncludedHoursForDriver)
	driverOvertimeHigh := max(0, hoursHigh-r.IncludedHoursForDriver)

	driverPayLow := RoundMoney(baseRate + addonsLow + driverMilesPay + driverOvertimeLow*r.DriverHourlyRate)
	driverPayHigh := RoundMoney(baseRate + addonsHigh + driverMilesPay + driverOvertimeHigh*r.DriverHourlyRate)

	assignments = append(assignments, PlannedAssignment{
		DriverID:   mainDriverID,
		Role:       entities.AssignmentRoleMainDriver,
		HourlyRate: r.DriverHourlyRate,
		MilesRate:  r.DriverMilesRate,
		HoursLow:   RoundTenth(hoursLow),
		HoursHigh:  RoundTenth(hoursHigh),
		MilesPay:   driverMilesPay,
		PayLow:     driverPayLow,
		PayHigh:    driverPayHigh,
	})

	payoutsLow := driverPayLow
	payoutsHigh := driverPayHigh

	for _, helperID := range helperIDs {
		milesPay := RoundMoney(roundTripMiles * r.HelperMilesRate)
		payLow := RoundMoney(hoursLow*r.HelperHourlyRate + milesPay)
		payHigh := RoundMoney(hoursHigh*r.HelperHourlyRate + milesPay)

		assignments = append(assignments, PlannedAssignment{
			DriverID:   helperID,
			Role:       entities.AssignmentRoleHelper,
			HourlyRate: r.HelperHourlyRate,
			MilesRate:  r.HelperMilesRate,
			HoursLow:   RoundTenth(hoursLow),
			HoursHigh:  RoundTenth(hoursHigh),
			MilesPay:   milesPay,
			PayLow:     payLow,
			PayHigh:    payHigh,
		})

		payoutsLow += payLow
		payoutsHigh += payHigh
	}

	customerLow, feeLow := r.GrossUp(payoutsLow)
	customerHigh, feeHigh := r.GrossUp(payoutsHigh)

	return AssignmentPlan{
		Assignments:       assignments,
		PayoutsLow:        payoutsLow,
		PayoutsHigh:       payoutsHigh,
		CustomerTotalLow:  customerLow,
		CustomerTotalHigh: customerHigh,
		PlatformFeeLow:    feeLow,
		PlatformFeeHigh:   feeHigh,
	}
}
