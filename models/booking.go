package models

import (
	"strings"
	"time"
)

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAssigned  BookingStatus = "assigned"
	StatusCompleted BookingStatus = "completed"
	StatusPaid      BookingStatus = "paid"
	StatusCancelled BookingStatus = "cancelled"
)

// DraftIDPrefix marks client-generated booking ids. The platform replaces
// them with a durable id when the booking is first persisted.
const DraftIDPrefix = "tmp-"

// Job is a billable service task selected onto a booking.
type Job struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category,omitempty"`
}

// JobPrice is the agreed labour price for one job on a booking. Its duration
// is the contracted value and wins over the job's catalogue duration when
// billing.
type JobPrice struct {
	UnitPrice       Money `json:"price"`
	DurationMinutes int   `json:"duration"`
}

// PartPrice is the agreed unit price for one part on a booking.
type PartPrice struct {
	UnitPrice Money `json:"price"`
}

// TimeSlot is a proposed or agreed visit window.
type TimeSlot struct {
	ID           string   `json:"id"`
	TimeInterval string   `json:"timeInterval"`
	Dates        []string `json:"dates"`
	Notes        string   `json:"notes,omitempty"`
	Completed    bool     `json:"completed,omitempty"`
}

// Location is the minimal address unit a booking carries.
type Location struct {
	PostalCode string `json:"postalCode"`
}

// Booking is the composed, priced record of jobs, parts, schedule, and
// mechanic assignment for one service engagement. The collection types carry
// tolerant decoders (see flex.go); booking.Normalize establishes the
// remaining canonical-shape guarantees.
type Booking struct {
	ID         string        `json:"id"`
	Vehicle    Vehicle       `json:"vehicle"`
	Jobs       JobList       `json:"jobs"`
	JobPrices  JobPriceMap   `json:"jobsPrices"`
	PartItems  PartList      `json:"partItems"`
	PartPrices PartPriceMap  `json:"partItemsPrices"`
	Schedules  TimeSlotList  `json:"schedules"`
	Location   Location      `json:"location"`
	Mechanic   *Mechanic     `json:"mechanic,omitempty"`
	Status     BookingStatus `json:"status"`
	TotalPrice float64       `json:"totalPrice"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// IsDraft reports whether the booking still carries a client-generated id.
func (b Booking) IsDraft() bool {
	return strings.HasPrefix(b.ID, DraftIDPrefix)
}

// HasJob reports whether a job with the given id is on the booking.
func (b Booking) HasJob(id string) bool {
	for _, j := range b.Jobs {
		if j.ID == id {
			return true
		}
	}
	return false
}

// HasPart reports whether a part with the given id is on the booking.
func (b Booking) HasPart(id string) bool {
	for _, p := range b.PartItems {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the booking so mutation operations can work
// copy-on-write without touching caller-held state.
func (b Booking) Clone() Booking {
	out := b
	out.Jobs = append(JobList{}, b.Jobs...)
	out.PartItems = append(PartList{}, b.PartItems...)
	out.Schedules = append(TimeSlotList{}, b.Schedules...)
	for i, s := range out.Schedules {
		out.Schedules[i].Dates = append([]string{}, s.Dates...)
	}
	out.JobPrices = make(JobPriceMap, len(b.JobPrices))
	for id, p := range b.JobPrices {
		out.JobPrices[id] = p
	}
	out.PartPrices = make(PartPriceMap, len(b.PartPrices))
	for id, p := range b.PartPrices {
		out.PartPrices[id] = p
	}
	if b.Mechanic != nil {
		mech := *b.Mechanic
		out.Mechanic = &mech
	}
	out.Vehicle.Bookings = append([]string{}, b.Vehicle.Bookings...)
	return out
}
