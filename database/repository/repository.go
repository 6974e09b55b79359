package repository

import (
	"context"

	"omm/models"
)

// Assignment actions accepted by the platform.
const (
	AssignAction   = "assign"
	UnassignAction = "unassign"
)

// BookingRepository is the booking source/sink on the platform API. Payloads
// it returns may use either historical price-collection shape; callers
// normalize every inbound record.
type BookingRepository interface {
	Fetch(ctx context.Context, id string) (models.Booking, error)
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	Save(ctx context.Context, b models.Booking) (models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// CatalogRepository serves read-only part reference data. vehicleID scopes
// the catalogue to one car; empty means the global catalogue.
type CatalogRepository interface {
	FetchParts(ctx context.Context, vehicleID string) ([]models.CatalogPart, error)
}

// AssignmentRepository is the authority for mechanic assignment. The booking
// it resolves is authoritative and replaces any optimistic local state;
// concurrent claims are arbitrated upstream, not here.
type AssignmentRepository interface {
	SetAssignment(ctx context.Context, bookingID string, action string) (models.Booking, error)
}
