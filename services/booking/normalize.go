package booking

import (
	"encoding/json"

	"omm/models"
)

// Normalize coerces a booking into the canonical shape the rest of the
// engine assumes: non-nil collections, a placeholder vehicle instead of a
// missing one, and a default status. It never fails and is idempotent, so it
// is safe to apply to every inbound record regardless of origin or age.
//
// Shape drift inside the payload (array-vs-mapping price collections,
// string-encoded numbers, non-array lists) is already absorbed by the
// tolerant decoders in models; nothing below this function may branch on
// payload shape.
func Normalize(b models.Booking) models.Booking {
	if b.Jobs == nil {
		b.Jobs = models.JobList{}
	}
	if b.PartItems == nil {
		b.PartItems = models.PartList{}
	}
	if b.Schedules == nil {
		b.Schedules = models.TimeSlotList{}
	}
	if b.JobPrices == nil {
		b.JobPrices = models.JobPriceMap{}
	}
	if b.PartPrices == nil {
		b.PartPrices = models.PartPriceMap{}
	}
	if b.Vehicle.Bookings == nil {
		b.Vehicle.Bookings = []string{}
	}
	if b.Status == "" {
		b.Status = models.StatusPending
	}
	return b
}

// Decode parses a raw platform payload into canonical form. Fields that fail
// to decode keep their zero values; malformed input degrades, it never
// errors.
func Decode(data []byte) models.Booking {
	var b models.Booking
	_ = json.Unmarshal(data, &b)
	return Normalize(b)
}
