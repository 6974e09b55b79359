package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"omm/database/repository"
	"omm/models"
	"omm/utils"
)

// AssignmentState classifies who holds a booking relative to the acting user.
type AssignmentState string

const (
	Unassigned      AssignmentState = "unassigned"
	AssignedToSelf  AssignmentState = "assignedToSelf"
	AssignedToOther AssignmentState = "assignedToOther"
)

// StateOf derives the assignment state of a booking for the acting user.
func StateOf(b models.Booking, actor models.Actor) AssignmentState {
	switch {
	case b.Mechanic == nil || b.Mechanic.ID == "":
		return Unassigned
	case b.Mechanic.ID == actor.ID:
		return AssignedToSelf
	default:
		return AssignedToOther
	}
}

// AssignmentEngine runs the two-phase assignment protocol: apply an
// optimistic local transition, commit it through the platform, then either
// adopt the authoritative booking from the response or roll back to the
// pre-transition value. A takeover never happens directly; it must pass
// through Unassigned.
type AssignmentEngine struct {
	Repo repository.AssignmentRepository
}

// Take claims an unassigned booking for the acting user. Taking a booking
// that is already held, by anyone, is rejected before any commit is
// attempted.
func (e *AssignmentEngine) Take(ctx context.Context, b models.Booking, actor models.Actor) (models.Booking, error) {
	if state := StateOf(b, actor); state != Unassigned {
		return b, &TransitionError{Action: "take", From: state}
	}
	pending := b.Clone()
	pending.Mechanic = &models.Mechanic{ID: actor.ID, Name: actor.Name}
	pending.Status = models.StatusAssigned
	return e.commit(ctx, b, pending, repository.AssignAction, actor)
}

// Release returns the acting user's own booking to the unassigned pool.
func (e *AssignmentEngine) Release(ctx context.Context, b models.Booking, actor models.Actor) (models.Booking, error) {
	if state := StateOf(b, actor); state != AssignedToSelf {
		return b, &TransitionError{Action: "release", From: state}
	}
	pending := b.Clone()
	pending.Mechanic = nil
	pending.Status = models.StatusPending
	return e.commit(ctx, b, pending, repository.UnassignAction, actor)
}

// ForceRelease unassigns a booking held by someone else. Administrative
// override only.
func (e *AssignmentEngine) ForceRelease(ctx context.Context, b models.Booking, actor models.Actor) (models.Booking, error) {
	if !actor.Admin {
		return b, NewMutationError(CodeForbidden, "force release requires administrative privilege")
	}
	if state := StateOf(b, actor); state != AssignedToOther {
		return b, &TransitionError{Action: "forceRelease", From: state}
	}
	pending := b.Clone()
	pending.Mechanic = nil
	pending.Status = models.StatusPending
	return e.commit(ctx, b, pending, repository.UnassignAction, actor)
}

// commit drives the optimistic transition to a resolved state. The server's
// booking is the source of truth and replaces the local guess; any failure,
// including an abandoned context, resolves to the rollback value. The state
// machine never ends in between.
func (e *AssignmentEngine) commit(ctx context.Context, prev, pending models.Booking, action string, actor models.Actor) (models.Booking, error) {
	logger := utils.GetLogger()
	logger.Debug("assignment transition pending",
		zap.String("bookingId", prev.ID),
		zap.String("action", action),
		zap.String("actorId", actor.ID),
		zap.String("optimisticState", string(StateOf(pending, actor))))

	confirmed, err := e.Repo.SetAssignment(ctx, prev.ID, action)
	if err != nil {
		logger.Warn("assignment commit failed, rolling back",
			zap.String("bookingId", prev.ID),
			zap.String("action", action),
			zap.Error(err))
		return prev, fmt.Errorf("assignment commit failed: %w", err)
	}
	if err := ctx.Err(); err != nil {
		// Caller abandoned the operation; the rollback value is the outcome.
		return prev, fmt.Errorf("assignment commit abandoned: %w", err)
	}

	resolved := Normalize(confirmed)
	logger.Info("assignment transition confirmed",
		zap.String("bookingId", resolved.ID),
		zap.String("action", action),
		zap.String("state", string(StateOf(resolved, actor))))
	return resolved, nil
}
