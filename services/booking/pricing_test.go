package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFeeAndTotal(t *testing.T) {
	cases := []struct {
		base  float64
		fee   float64
		total float64
	}{
		{1500, 150, 1650},
		{2000, 200, 2200},
		{2500, 250, 2750},
		{0, 0, 0},
		{999, 100, 1099},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.fee, PlatformFee(tc.base), "fee for %.2f", tc.base)
		assert.Equal(t, tc.total, TotalWithFee(tc.base), "total for %.2f", tc.base)
	}
}

func TestIndependentRounding(t *testing.T) {
	// Fee and total round independently from the base price, so the total
	// is not always base plus fee.
	base := 104.5
	fee := PlatformFee(base)    // round(10.45) = 10
	total := TotalWithFee(base) // round(114.95) = 115

	assert.Equal(t, 10.0, fee)
	assert.Equal(t, 115.0, total)
	assert.NotEqual(t, base+fee, total)
}

func TestQuote(t *testing.T) {
	inv := Quote("bk_1", 1800)
	assert.Equal(t, "bk_1", inv.BookingID)
	assert.Equal(t, 1800.0, inv.BasePrice)
	assert.Equal(t, 180.0, inv.PlatformFee)
	assert.Equal(t, 1980.0, inv.Total)
}
