package usecase

import (
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"
)

// Nights returns the calendar-day difference between check-in and check-out.
// A stay from Jan 1 to Jan 4 is 3 nights regardless of clock times.
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

// ValidateStay rejects stays where check-out is not after check-in. Date
// pickers used to be the only guard here; the server now enforces it.
func ValidateStay(checkIn, checkOut time.Time) error {
	if Nights(checkIn, checkOut) < 1 {
		return fmt.Errorf("invalid stay: check-out must be after check-in")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeBreakdown builds the itemized price breakdown the client renders
// verbatim: subtotal = base price x nights, percentage taxes and fees over
// the subtotal, plus any flat cleaning fee. Total always equals subtotal
// plus the sum of every line.
func ComputeBreakdown(pricing utils.PricingConfig, basePrice float64, nights int) response.PriceBreakdownResponse {
	subtotal := round2(basePrice * float64(nights))

	var taxes, fees []response.BreakdownLine
	var taxTotal, feeTotal float64

	if pricing.TaxRatePct > 0 {
		amount := round2(subtotal * pricing.TaxRatePct / 100)
		taxes = append(taxes, response.BreakdownLine{
			Label:  fmt.Sprintf("VAT (%g%%)", pricing.TaxRatePct),
			Amount: amount,
		})
		taxTotal += amount
	}

	if pricing.ServiceFeePct > 0 {
		amount := round2(subtotal * pricing.ServiceFeePct / 100)
		fees = append(fees, response.BreakdownLine{
			Label:  fmt.Sprintf("Service fee (%g%%)", pricing.ServiceFeePct),
			Amount: amount,
		})
		feeTotal += amount
	}

	if pricing.CleaningFeeFlat > 0 {
		amount := round2(pricing.CleaningFeeFlat)
		fees = append(fees, response.BreakdownLine{
			Label:  "Cleaning fee",
			Amount: amount,
		})
		feeTotal += amount
	}

	return response.PriceBreakdownResponse{
		PricePerNight: basePrice,
		Nights:        nights,
		Subtotal:      subtotal,
		Taxes:         taxes,
		Fees:          fees,
		Total:         round2(subtotal + taxTotal + feeTotal),
	}
}
