package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"omm/models"
	"omm/utils"
)

const (
	workingKeyPrefix = "booking:working:"
	workingTTL       = 30 * time.Minute
)

// Get fetches a booking from the platform, normalizes it, and seeds the
// working copy so subsequent edits start from canonical state.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	raw, err := s.Repo.Fetch(ctx, id)
	if err != nil {
		return models.Booking{}, fmt.Errorf("fetch booking %s: %w", id, err)
	}
	b := Normalize(raw)
	if err := s.PutWorking(ctx, b); err != nil {
		utils.GetLogger().Warn("failed to seed working copy", zap.String("bookingId", id), zap.Error(err))
	}
	return b, nil
}

// NewDraft synthesizes a client-side draft booking against a known vehicle.
// The draft id is temporary and replaced once the platform confirms creation.
func (s *DefaultBookingService) NewDraft(ctx context.Context, vehicle models.Vehicle, postalCode string) (models.Booking, error) {
	b := Normalize(models.Booking{
		ID:        models.DraftIDPrefix + uuid.NewString(),
		Vehicle:   vehicle,
		Location:  models.Location{PostalCode: postalCode},
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.PutWorking(ctx, b); err != nil {
		return models.Booking{}, fmt.Errorf("store draft booking: %w", err)
	}
	return b, nil
}

// Save persists the booking. Drafts go through creation, which swaps the
// temporary id for the platform-issued one; the stale draft working copy is
// dropped. The returned booking is the platform's authoritative record,
// normalized, and becomes the new working copy.
func (s *DefaultBookingService) Save(ctx context.Context, b models.Booking) (models.Booking, error) {
	b = Reprice(Normalize(b))

	var (
		saved models.Booking
		err   error
	)
	if b.IsDraft() {
		saved, err = s.Repo.Create(ctx, b)
	} else {
		saved, err = s.Repo.Save(ctx, b)
	}
	if err != nil {
		return b, fmt.Errorf("persist booking %s: %w", b.ID, err)
	}

	confirmed := Normalize(saved)
	if b.IsDraft() && confirmed.ID != b.ID {
		if err := s.DropWorking(ctx, b.ID); err != nil {
			utils.GetLogger().Warn("failed to drop draft working copy", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	if err := s.PutWorking(ctx, confirmed); err != nil {
		utils.GetLogger().Warn("failed to refresh working copy", zap.String("bookingId", confirmed.ID), zap.Error(err))
	}
	return confirmed, nil
}

// Delete removes a booking from the platform and drops its working copy.
// Drafts never reached the platform and are only evicted locally.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if !isDraftID(id) {
		if err := s.Repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete booking %s: %w", id, err)
		}
	}
	return s.DropWorking(ctx, id)
}

// Working returns the booking currently under edit, falling back to a fresh
// fetch when no working copy exists.
func (s *DefaultBookingService) Working(ctx context.Context, id string) (models.Booking, error) {
	data, err := s.Cache.Get(ctx, workingKeyPrefix+id)
	if err != nil {
		if isDraftID(id) {
			return models.Booking{}, fmt.Errorf("draft booking %s expired", id)
		}
		return s.Get(ctx, id)
	}
	return Decode([]byte(data)), nil
}

// PutWorking stores the working copy under its booking id.
func (s *DefaultBookingService) PutWorking(ctx context.Context, b models.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode working copy: %w", err)
	}
	return s.Cache.Set(ctx, workingKeyPrefix+b.ID, string(data), workingTTL)
}

// DropWorking evicts the working copy for a booking id.
func (s *DefaultBookingService) DropWorking(ctx context.Context, id string) error {
	return s.Cache.Del(ctx, workingKeyPrefix+id)
}

func isDraftID(id string) bool {
	return strings.HasPrefix(id, models.DraftIDPrefix)
}
