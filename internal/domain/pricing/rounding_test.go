package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.0, RoundMoney(10))
	assert.Equal(t, 10.56, RoundMoney(10.556))
	assert.Equal(t, 10.55, RoundMoney(10.554))

	// Half to even on the cent boundary.
	assert.Equal(t, 0.12, RoundMoney(0.125))
	assert.Equal(t, 0.14, RoundMoney(0.135))
	assert.Equal(t, 2.68, RoundMoney(2.675))
}

func TestRoundTenth(t *testing.T) {
	assert.Equal(t, 2.2, RoundTenth(2.24))
	assert.Equal(t, 2.3, RoundTenth(2.26))

	// Half to even on the tenth boundary.
	assert.Equal(t, 2.2, RoundTenth(2.25))
	assert.Equal(t, 1.2, RoundTenth(1.15))
}

func TestRoundUpToNearest5(t *testing.T) {
	assert.Equal(t, 0.0, RoundUpToNearest5(0))
	assert.Equal(t, 5.0, RoundUpToNearest5(0.01))
	assert.Equal(t, 335.0, RoundUpToNearest5(330.01))
	assert.Equal(t, 335.0, RoundUpToNearest5(331))

	// Exact multiples stay put.
	assert.Equal(t, 330.0, RoundUpToNearest5(330))
	assert.Equal(t, 420.0, RoundUpToNearest5(420))
}

func TestRoundUpToQuarterHour(t *testing.T) {
	assert.Equal(t, 0.0, RoundUpToQuarterHour(0))
	assert.Equal(t, 2.25, RoundUpToQuarterHour(2.166666666666667))
	assert.Equal(t, 2.5, RoundUpToQuarterHour(2.26))

	// Exact quarter hours stay put.
	assert.Equal(t, 2.0, RoundUpToQuarterHour(2))
	assert.Equal(t, 2.25, RoundUpToQuarterHour(2.25))
}
