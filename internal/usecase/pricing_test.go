package usecase

import (
	"testing"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsCalendarDayDiff(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2024, 1, 1), date(2024, 1, 4)))
	assert.Equal(t, 1, Nights(date(2024, 1, 1), date(2024, 1, 2)))
	assert.Equal(t, 0, Nights(date(2024, 1, 1), date(2024, 1, 1)))
	assert.Equal(t, -1, Nights(date(2024, 1, 2), date(2024, 1, 1)))
}

func TestNightsIgnoresClockTimes(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 2, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 1, Nights(checkIn, checkOut))
}

func TestValidateStayRejectsNonPositiveStays(t *testing.T) {
	assert.Error(t, ValidateStay(date(2024, 1, 4), date(2024, 1, 1)))
	assert.Error(t, ValidateStay(date(2024, 1, 1), date(2024, 1, 1)))
	assert.NoError(t, ValidateStay(date(2024, 1, 1), date(2024, 1, 2)))
}

func TestComputeBreakdownSubtotal(t *testing.T) {
	breakdown := ComputeBreakdown(utils.PricingConfig{}, 100, 3)

	assert.Equal(t, 300.0, breakdown.Subtotal)
	assert.Equal(t, 300.0, breakdown.Total)
	assert.Equal(t, 100.0, breakdown.PricePerNight)
	assert.Equal(t, 3, breakdown.Nights)
	assert.Empty(t, breakdown.Taxes)
	assert.Empty(t, breakdown.Fees)
}

func TestComputeBreakdownWithTaxesAndFees(t *testing.T) {
	pricing := utils.PricingConfig{
		TaxRatePct:      10,
		ServiceFeePct:   5,
		CleaningFeeFlat: 25,
	}

	breakdown := ComputeBreakdown(pricing, 100, 3)

	require.Len(t, breakdown.Taxes, 1)
	require.Len(t, breakdown.Fees, 2)

	assert.Equal(t, 300.0, breakdown.Subtotal)
	assert.Equal(t, 30.0, breakdown.Taxes[0].Amount)
	assert.Equal(t, 15.0, breakdown.Fees[0].Amount)
	assert.Equal(t, 25.0, breakdown.Fees[1].Amount)
	assert.Equal(t, 370.0, breakdown.Total)
}

// Total must always equal subtotal plus every itemized line, whatever the
// rates are.
func TestComputeBreakdownTotalMatchesLines(t *testing.T) {
	pricing := utils.PricingConfig{
		TaxRatePct:      7.5,
		ServiceFeePct:   3.3,
		CleaningFeeFlat: 12.99,
	}

	breakdown := ComputeBreakdown(pricing, 89.99, 5)

	sum := breakdown.Subtotal
	for _, line := range breakdown.Taxes {
		sum += line.Amount
	}
	for _, line := range breakdown.Fees {
		sum += line.Amount
	}

	assert.InDelta(t, breakdown.Total, sum, 0.011)
}
