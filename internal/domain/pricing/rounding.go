package pricing

import "github.com/shopspring/decimal"

// Monetary and hour figures must be reproducible bit-for-bit across runs, so
// every rounding step goes through decimal arithmetic instead of raw float
// math. RoundMoney and RoundTenth use round-half-to-even; half-away-from-zero
// diverges on .x5 boundaries and is not acceptable here.

var (
	five    = decimal.NewFromInt(5)
	quarter = decimal.RequireFromString("0.25")
)

// RoundMoney rounds to 2 decimal places, half to even.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return f
}

// RoundTenth rounds to 1 decimal place, half to even.
func RoundTenth(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(1).Float64()
	return f
}

// RoundUpToNearest5 rounds up to the next multiple of 5. Exact multiples are
// unchanged.
func RoundUpToNearest5(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Div(five).Ceil().Mul(five).Float64()
	return f
}

// RoundUpToQuarterHour rounds hours up to the next quarter hour. Exact
// quarter-hour inputs are unchanged.
func RoundUpToQuarterHour(hours float64) float64 {
	f, _ := decimal.NewFromFloat(hours).Div(quarter).Ceil().Mul(quarter).Float64()
	return f
}
