package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBreakdown(t *testing.T) {
	b := Compute(100.00, 10, 50.00)

	assert.Equal(t, 10.00, b.DiscountAmount)
	assert.Equal(t, 90.00, b.NetTotal)
	assert.Equal(t, 40.00, b.BalanceDue)
}

func TestComputeZeroInputs(t *testing.T) {
	b := Compute(0, 0, 0)

	assert.Equal(t, 0.0, b.DiscountAmount)
	assert.Equal(t, 0.0, b.NetTotal)
	assert.Equal(t, 0.0, b.BalanceDue)
}

func TestComputeRoundsToTwoDecimals(t *testing.T) {
	// 33.33% of 99.99 = 33.326667, net = 66.663333
	b := Compute(99.99, 33.33, 0)

	assert.Equal(t, 33.33, b.DiscountAmount)
	assert.Equal(t, 66.66, b.NetTotal)
	assert.Equal(t, 66.66, b.BalanceDue)
}

func TestComputeDiscountPlusNetEqualsSubtotal(t *testing.T) {
	cases := []struct {
		subtotal        float64
		discountPercent float64
	}{
		{100, 10},
		{250.50, 0},
		{19.99, 100},
		{1234.56, 7.5},
		{0.01, 50},
	}

	for _, tc := range cases {
		b := Compute(tc.subtotal, tc.discountPercent, 0)
		assert.InDelta(t, tc.subtotal, b.DiscountAmount+b.NetTotal, 0.01,
			"subtotal=%v discount=%v%%", tc.subtotal, tc.discountPercent)
	}
}

func TestComputeBalanceDue(t *testing.T) {
	b := Compute(200, 25, 100)

	assert.Equal(t, 50.00, b.DiscountAmount)
	assert.Equal(t, 150.00, b.NetTotal)
	assert.InDelta(t, b.NetTotal-100, b.BalanceDue, 0.001)
}

func TestComputeNonFiniteTreatedAsZero(t *testing.T) {
	b := Compute(math.NaN(), math.Inf(1), math.NaN())

	assert.Equal(t, 0.0, b.DiscountAmount)
	assert.Equal(t, 0.0, b.NetTotal)
	assert.Equal(t, 0.0, b.BalanceDue)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.0, Round2(0))
}
