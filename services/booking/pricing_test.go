package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"omm/models"
)

func pricedBooking() models.Booking {
	return Normalize(models.Booking{
		ID: "bk1",
		Jobs: models.JobList{
			{ID: "j1", Name: "Full service", DurationMinutes: 45},
		},
		JobPrices: models.JobPriceMap{
			"j1": {UnitPrice: 100, DurationMinutes: 60},
		},
		PartItems: models.PartList{
			{ID: "p1", Title: "Brake Pad", PriceForConsumer: 80},
		},
		PartPrices: models.PartPriceMap{
			"p1": {UnitPrice: 50},
		},
	})
}

func TestVATArithmetic(t *testing.T) {
	b := pricedBooking()
	q := PriceBooking(b)

	// serviceSubtotal 100, partsSubtotal 50 -> 100*1.2 + 50*1.2 = 180.00
	assert.InDelta(t, 100.0, q.ServiceSubtotal, 1e-9)
	assert.InDelta(t, 50.0, q.PartsSubtotal, 1e-9)
	assert.InDelta(t, 120.0, q.ServiceTotal, 1e-9)
	assert.InDelta(t, 60.0, q.PartsTotal, 1e-9)
	assert.Equal(t, 180.0, q.GrandTotal)
}

func TestPriceEntryDurationWins(t *testing.T) {
	// The job says 45 minutes; the agreed price entry says 60. Billing uses
	// the price entry.
	b := pricedBooking()
	assert.InDelta(t, 100.0, ServiceSubtotal(b), 1e-9)
}

func TestJobWithoutPriceEntryContributesZero(t *testing.T) {
	b := pricedBooking()
	b.Jobs = append(b.Jobs, models.Job{ID: "j2", Name: "Diagnostics", DurationMinutes: 30})
	assert.InDelta(t, 100.0, ServiceSubtotal(b), 1e-9)
}

func TestPartWithoutPriceEntryFallsBackToConsumerPrice(t *testing.T) {
	b := pricedBooking()
	delete(b.PartPrices, "p1")
	assert.InDelta(t, 80.0, PartsSubtotal(b), 1e-9)
}

func TestEmptyBookingPricesToZero(t *testing.T) {
	q := PriceBooking(Normalize(models.Booking{}))
	assert.Zero(t, q.ServiceSubtotal)
	assert.Zero(t, q.PartsSubtotal)
	assert.Zero(t, q.GrandTotal)
}

func TestGrandTotalRoundsHalfUp(t *testing.T) {
	b := Normalize(models.Booking{
		Jobs:      models.JobList{{ID: "j1"}},
		JobPrices: models.JobPriceMap{"j1": {UnitPrice: 10.342, DurationMinutes: 60}},
	})
	// 10.342 * 1.2 = 12.4104 -> 12.41 at the display edge.
	assert.Equal(t, 12.41, PriceBooking(b).GrandTotal)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "180.00", FormatAmount(180))
	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "12.35", FormatAmount(12.346))
}

func TestRepriceSetsDerivedTotal(t *testing.T) {
	b := pricedBooking()
	b.TotalPrice = 999 // hand-edited values never survive
	assert.Equal(t, 180.0, Reprice(b).TotalPrice)
}
