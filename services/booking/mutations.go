package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"omm/models"
)

// Mutation operations are pure: each takes the current booking and returns a
// new one, leaving the caller's value untouched. Rejections return the input
// booking unchanged together with a MutationError signal. Every operation
// re-establishes the key-consistency invariant (price-map keys are a subset
// of the item ids on the booking).

// JobField enumerates the editable scalar fields of a job. Each field
// validates and converts its own value in EditJobField.
type JobField string

const (
	JobFieldName        JobField = "name"
	JobFieldDuration    JobField = "duration"
	JobFieldDescription JobField = "description"
	JobFieldCategory    JobField = "category"
)

// ScheduleField enumerates the editable fields of a time slot.
type ScheduleField string

const (
	ScheduleFieldInterval  ScheduleField = "timeInterval"
	ScheduleFieldDates     ScheduleField = "dates"
	ScheduleFieldNotes     ScheduleField = "notes"
	ScheduleFieldCompleted ScheduleField = "completed"
)

// AddJob appends a job with its computed price entry. Re-adding a job the
// booking already carries is a no-op surfaced as a duplicate signal.
func AddJob(b models.Booking, job models.Job, price models.JobPrice) (models.Booking, error) {
	if b.HasJob(job.ID) {
		return b, NewMutationError(CodeDuplicate, fmt.Sprintf("job %q already selected", job.ID))
	}
	nb := b.Clone()
	nb.Jobs = append(nb.Jobs, job)
	nb.JobPrices[job.ID] = price
	return Reprice(nb), nil
}

// RemoveJob removes the job at index and its price entry in the same
// operation. Removing a job that never got a price entry is legal.
func RemoveJob(b models.Booking, index int) (models.Booking, error) {
	if index < 0 || index >= len(b.Jobs) {
		return b, NewMutationError(CodeBadIndex, fmt.Sprintf("no job at index %d", index))
	}
	nb := b.Clone()
	removed := nb.Jobs[index]
	nb.Jobs = append(nb.Jobs[:index], nb.Jobs[index+1:]...)
	delete(nb.JobPrices, removed.ID)
	return Reprice(nb), nil
}

// EditJobField edits one scalar field of the job at index. Editing the
// duration also rewrites the price entry's duration so billing always uses
// the latest agreed value.
func EditJobField(b models.Booking, index int, field JobField, value string) (models.Booking, error) {
	if index < 0 || index >= len(b.Jobs) {
		return b, NewMutationError(CodeBadIndex, fmt.Sprintf("no job at index %d", index))
	}
	nb := b.Clone()
	job := &nb.Jobs[index]
	switch field {
	case JobFieldName:
		job.Name = value
	case JobFieldDescription:
		job.Description = value
	case JobFieldCategory:
		job.Category = value
	case JobFieldDuration:
		minutes, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || minutes < 0 {
			return b, NewMutationError(CodeBadValue, fmt.Sprintf("invalid duration %q", value))
		}
		job.DurationMinutes = minutes
		if price, ok := nb.JobPrices[job.ID]; ok {
			price.DurationMinutes = minutes
			nb.JobPrices[job.ID] = price
		}
	default:
		return b, NewMutationError(CodeBadValue, fmt.Sprintf("unknown job field %q", field))
	}
	return Reprice(nb), nil
}

// AddPart appends a part and seeds its price entry from the consumer price.
// Out-of-stock parts are rejected unless the actor is administrative, where
// stock is informational only.
func AddPart(b models.Booking, actor models.Actor, part models.Part) (models.Booking, error) {
	if b.HasPart(part.ID) {
		return b, NewMutationError(CodeDuplicate, fmt.Sprintf("part %q already selected", part.ID))
	}
	if !part.InStock() && !actor.Admin {
		return b, NewMutationError(CodeOutOfStock, fmt.Sprintf("part %q is out of stock", part.ID))
	}
	nb := b.Clone()
	nb.PartItems = append(nb.PartItems, part)
	nb.PartPrices[part.ID] = models.PartPrice{UnitPrice: part.PriceForConsumer}
	return Reprice(nb), nil
}

// RemovePart removes the part with the given id and its price entry
// atomically.
func RemovePart(b models.Booking, id string) (models.Booking, error) {
	if !b.HasPart(id) {
		return b, NewMutationError(CodeNotFound, fmt.Sprintf("no part %q on booking", id))
	}
	nb := b.Clone()
	for i, p := range nb.PartItems {
		if p.ID == id {
			nb.PartItems = append(nb.PartItems[:i], nb.PartItems[i+1:]...)
			break
		}
	}
	delete(nb.PartPrices, id)
	return Reprice(nb), nil
}

// AddSchedule appends a time slot. Slots created client-side get a draft id.
func AddSchedule(b models.Booking, slot models.TimeSlot) (models.Booking, error) {
	if slot.ID == "" {
		slot.ID = models.DraftIDPrefix + uuid.NewString()
	}
	nb := b.Clone()
	if slot.Dates == nil {
		slot.Dates = []string{}
	}
	nb.Schedules = append(nb.Schedules, slot)
	return nb, nil
}

// RemoveSchedule removes the time slot at index. Schedules carry no pricing
// relationship, so no derived state needs touching.
func RemoveSchedule(b models.Booking, index int) (models.Booking, error) {
	if index < 0 || index >= len(b.Schedules) {
		return b, NewMutationError(CodeBadIndex, fmt.Sprintf("no schedule at index %d", index))
	}
	nb := b.Clone()
	nb.Schedules = append(nb.Schedules[:index], nb.Schedules[index+1:]...)
	return nb, nil
}

// EditScheduleField edits one field of the time slot at index. The dates
// field arrives as delimited text and is split on commas with each entry
// trimmed.
func EditScheduleField(b models.Booking, index int, field ScheduleField, value string) (models.Booking, error) {
	if index < 0 || index >= len(b.Schedules) {
		return b, NewMutationError(CodeBadIndex, fmt.Sprintf("no schedule at index %d", index))
	}
	nb := b.Clone()
	slot := &nb.Schedules[index]
	switch field {
	case ScheduleFieldInterval:
		slot.TimeInterval = value
	case ScheduleFieldNotes:
		slot.Notes = value
	case ScheduleFieldDates:
		slot.Dates = splitDates(value)
	case ScheduleFieldCompleted:
		done, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return b, NewMutationError(CodeBadValue, fmt.Sprintf("invalid completed flag %q", value))
		}
		slot.Completed = done
	default:
		return b, NewMutationError(CodeBadValue, fmt.Sprintf("unknown schedule field %q", field))
	}
	return nb, nil
}

// SetMechanic sets or clears the booking's mechanic. Restricted to
// administrative actors; everyone else goes through the assignment state
// machine.
func SetMechanic(b models.Booking, actor models.Actor, mech *models.Mechanic) (models.Booking, error) {
	if !actor.Admin {
		return b, NewMutationError(CodeForbidden, "setting the mechanic requires administrative privilege")
	}
	nb := b.Clone()
	if mech == nil {
		nb.Mechanic = nil
	} else {
		m := *mech
		nb.Mechanic = &m
	}
	return nb, nil
}

// PricesConsistent reports whether every price entry refers to an item still
// on the booking. Every mutation operation keeps this true.
func PricesConsistent(b models.Booking) bool {
	for id := range b.JobPrices {
		if !b.HasJob(id) {
			return false
		}
	}
	for id := range b.PartPrices {
		if !b.HasPart(id) {
			return false
		}
	}
	return true
}

func splitDates(value string) []string {
	parts := strings.Split(value, ",")
	dates := make([]string, 0, len(parts))
	for _, p := range parts {
		if d := strings.TrimSpace(p); d != "" {
			dates = append(dates, d)
		}
	}
	return dates
}
