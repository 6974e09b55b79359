package booking

import (
	"context"
	"time"

	"omm/database/repository"
	"omm/models"
)

// WorkingStore is the keyed cache that holds working copies while a booking
// is being edited. Backed by Redis in production; a Get miss is reported as
// an error.
type WorkingStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// BookingService loads, drafts, and persists bookings against the platform
// API, holding a working copy in the cache while a booking is being edited.
// Edits to one booking are serialized through that working copy; the core
// operations themselves stay pure.
type BookingService interface {
	Get(ctx context.Context, id string) (models.Booking, error)
	NewDraft(ctx context.Context, vehicle models.Vehicle, postalCode string) (models.Booking, error)
	Save(ctx context.Context, b models.Booking) (models.Booking, error)
	Delete(ctx context.Context, id string) error

	Working(ctx context.Context, id string) (models.Booking, error)
	PutWorking(ctx context.Context, b models.Booking) error
	DropWorking(ctx context.Context, id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo  repository.BookingRepository
	Cache WorkingStore
}
