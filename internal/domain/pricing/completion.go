package pricing

import (
	"time"

	"boxertrucks/internal/domain/entities"
)

// Settlement is the result of recalculating a job's pay against actual
// elapsed time. Every range collapses to a single value.
type Settlement struct {
	ActualHours float64

	// Assignments are updated copies of the input rows, in input order.
	Assignments []entities.JobAssignment

	TotalPayouts  float64
	CustomerTotal float64
	PlatformFee   float64
}

// SettleCompletion collapses a job's estimated ranges into settled figures
// using the real elapsed duration, rounded up to the next quarter hour.
//
// The main driver's add-ons settle at their high figure regardless of the
// estimate's low/high split; the settlement always favors the worker over
// the originally quoted low bound.
func SettleCompletion(r Rates, q entities.Quote, assignments []entities.JobAssignment, elapsed time.Duration) Settlement {
	durationHours := elapsed.Minutes() / 60
	actualHours := RoundUpToQuarterHour(durationHours)
	storedHours := RoundTenth(actualHours)

	roundTripMiles := q.Miles * 2

	settled := make([]entities.JobAssignment, len(assignments))
	totalPayouts := 0.0

	for i, a := range assignments {
		a.HoursLow = storedHours
		a.HoursHigh = storedHours

		switch a.Role {
		case entities.AssignmentRoleMainDriver:
			a.HourlyRate = r.DriverHourlyRate
			a.MilesRate = r.DriverMilesRate
			a.MilesPay = RoundMoney(roundTripMiles * r.DriverMilesRate)

			addonsHigh := r.AddonsHigh(AddonInput{
				StairFlights: q.StairFlights,
				LongCarry:    q.LongCarry,
				HasHeavyItem: q.HasHeavyItem,
			})
			overtimeHours := max(0, actualHours-r.IncludedHoursForDriver)

			pay := RoundMoney(r.BaseFlatRate(q.HomeSize) + addonsHigh + a.MilesPay + overtimeHours*r.DriverHourlyRate)
			a.PayLow = pay
			a.PayHigh = pay

		default:
			a.HourlyRate = r.HelperHourlyRate
			a.MilesRate = r.HelperMilesRate
			a.MilesPay = RoundMoney(roundTripMiles * r.HelperMilesRate)

			pay := RoundMoney(actualHours*r.HelperHourlyRate + a.MilesPay)
			a.PayLow = pay
			a.PayHigh = pay
		}

		settled[i] = a
		totalPayouts += a.PayHigh
	}

	customerTotal, platformFee := r.GrossUp(totalPayouts)

	return Settlement{
		ActualHours:   actualHours,
		Assignments:   settled,
		TotalPayouts:  totalPayouts,
		CustomerTotal: customerTotal,
		PlatformFee:   platformFee,
	}
}
