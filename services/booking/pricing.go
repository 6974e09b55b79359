package booking

import (
	"math"
	"strconv"

	"omm/models"
)

// VATRate is the fixed tax multiplier applied to both subtotals.
const VATRate = 0.20

// Quote is the priced view of a booking. Subtotals and VAT-inclusive totals
// keep full precision; only the grand total is rounded, at the edge.
type Quote struct {
	ServiceSubtotal float64 `json:"serviceSubtotal"`
	PartsSubtotal   float64 `json:"partsSubtotal"`
	ServiceTotal    float64 `json:"serviceTotal"`
	PartsTotal      float64 `json:"partsTotal"`
	GrandTotal      float64 `json:"grandTotal"`
}

// ServiceSubtotal sums labour across the booking's jobs: unit price scaled by
// the agreed duration from the price entry, in hours. The price entry's
// duration is the contracted value and wins over the job's own duration. A
// job without a price entry contributes 0.
func ServiceSubtotal(b models.Booking) float64 {
	total := 0.0
	for _, j := range b.Jobs {
		p, ok := b.JobPrices[j.ID]
		if !ok {
			continue
		}
		total += float64(p.UnitPrice) * float64(p.DurationMinutes) / 60
	}
	return total
}

// PartsSubtotal sums the booking's part prices at full stored unit price.
// A part without a price entry falls back to its consumer price.
func PartsSubtotal(b models.Booking) float64 {
	total := 0.0
	for _, p := range b.PartItems {
		if entry, ok := b.PartPrices[p.ID]; ok {
			total += float64(entry.UnitPrice)
			continue
		}
		total += float64(p.PriceForConsumer)
	}
	return total
}

// PriceBooking computes the VAT-inclusive quote for a canonical booking.
// Pricing always produces numbers: empty collections and missing entries
// yield zeros, never errors.
func PriceBooking(b models.Booking) Quote {
	service := ServiceSubtotal(b)
	parts := PartsSubtotal(b)
	q := Quote{
		ServiceSubtotal: service,
		PartsSubtotal:   parts,
		ServiceTotal:    service * (1 + VATRate),
		PartsTotal:      parts * (1 + VATRate),
	}
	q.GrandTotal = Round2(q.ServiceTotal + q.PartsTotal)
	return q
}

// Reprice refreshes the booking's derived total. TotalPrice is never
// hand-edited; every mutation that touches pricing ends here.
func Reprice(b models.Booking) models.Booking {
	b.TotalPrice = PriceBooking(b).GrandTotal
	return b
}

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a monetary value with exactly two fractional digits.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
