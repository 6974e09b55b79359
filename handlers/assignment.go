package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"omm/database/repository"
	"omm/middleware"
	"omm/services/booking"
	"omm/utils"
)

// AssignmentHandler drives mechanic assignment through the two-phase
// optimistic protocol. The resolved booking (confirmed or rolled back) is
// always written back to the working copy so later edits see the outcome.
type AssignmentHandler struct {
	Engine *booking.AssignmentEngine
	Svc    booking.BookingService
}

func NewAssignmentHandler(engine *booking.AssignmentEngine, svc booking.BookingService) *AssignmentHandler {
	return &AssignmentHandler{Engine: engine, Svc: svc}
}

// SetAssignment handles assign/unassign actions for the acting mechanic.
// Unassigning a booking held by someone else requires administrative
// privilege and goes through the force-release transition.
func (h *AssignmentHandler) SetAssignment(c *gin.Context) {
	var input struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	actor := middleware.Actor(c)
	b, err := h.Svc.Working(ctx, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}

	var resolved = b
	var opErr error
	switch input.Action {
	case repository.AssignAction:
		resolved, opErr = h.Engine.Take(ctx, b, actor)
	case repository.UnassignAction:
		if booking.StateOf(b, actor) == booking.AssignedToOther {
			resolved, opErr = h.Engine.ForceRelease(ctx, b, actor)
		} else {
			resolved, opErr = h.Engine.Release(ctx, b, actor)
		}
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid action", input.Action)
		return
	}

	if err := h.Svc.PutWorking(ctx, resolved); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store working copy", err.Error())
		return
	}

	if opErr != nil {
		c.JSON(assignmentStatus(opErr), gin.H{
			"error":   opErr.Error(),
			"booking": resolved,
			"state":   booking.StateOf(resolved, actor),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": resolved,
		"state":   booking.StateOf(resolved, actor),
	})
}

func assignmentStatus(err error) int {
	var te *booking.TransitionError
	switch {
	case errors.As(err, &te):
		return http.StatusConflict
	case booking.IsSignal(err, booking.CodeForbidden):
		return http.StatusForbidden
	default:
		// Commit failure against the platform; local state was rolled back.
		return http.StatusBadGateway
	}
}
