package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"omm/middleware"
	"omm/models"
	"omm/services/booking"
	"omm/utils"
)

// BookingHandler exposes booking composition over HTTP. Each edit loads the
// working copy, applies one pure mutation, stores the result, and returns
// the updated booking with its quote. Holding edits behind the working copy
// is what serializes concurrent editors.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetBooking fetches and normalizes a booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.Working(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b, "quote": booking.PriceBooking(b)})
}

// CreateDraft synthesizes a client-side draft against a known vehicle.
func (h *BookingHandler) CreateDraft(c *gin.Context) {
	var input struct {
		Vehicle    models.Vehicle `json:"vehicle"`
		PostalCode string         `json:"postalCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	b, err := h.Svc.NewDraft(c.Request.Context(), input.Vehicle, input.PostalCode)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create draft", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b, "quote": booking.PriceBooking(b)})
}

// SaveBooking persists the working copy through the platform. Drafts are
// created and get their platform-issued id here.
func (h *BookingHandler) SaveBooking(c *gin.Context) {
	ctx := c.Request.Context()
	b, err := h.Svc.Working(ctx, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	saved, err := h.Svc.Save(ctx, b)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to save booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": saved, "quote": booking.PriceBooking(saved)})
}

// DeleteBooking removes a booking from the platform and the working set.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetQuote prices the working copy without changing it.
func (h *BookingHandler) GetQuote(c *gin.Context) {
	b, err := h.Svc.Working(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	q := booking.PriceBooking(b)
	c.JSON(http.StatusOK, gin.H{
		"quote":      q,
		"grandTotal": booking.FormatAmount(q.GrandTotal),
	})
}

// AddJob appends a selected job with its computed price.
func (h *BookingHandler) AddJob(c *gin.Context) {
	var input struct {
		Job   models.Job      `json:"job"`
		Price models.JobPrice `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.mutate(c, func(b models.Booking, _ models.Actor) (models.Booking, error) {
		return booking.AddJob(b, input.Job, input.Price)
	})
}

// RemoveJob drops the job at an index together with its price entry.
func (h *BookingHandler) RemoveJob(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.mutate(c, func(b models.Booking, _ models.Actor) (models.Booking, error) {
		return booking.RemoveJob(b, index)
	})
}

// EditJob edits one scalar field of a job.
func (h *BookingHandler) EditJob(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var input struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.mutate(c, func(b models.Booking, _ models.Actor) (models.Booking, error) {
		return booking.EditJobField(b, index, booking.JobField(input.Field), input.Value)
	})
}

// AddPart appends a selected part, seeding its price from the consumer price.
func (h *BookingHandler) AddPart(c *gin.Context) {
	var input struct {
		Part models.Part `json:"part"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.mutate(c, func(b models.Booking, actor models.Actor) (models.Booking, error) {
		return booking.AddPart(b, actor, input.Part)
	})
}

// RemovePart drops a part and its price entry.
func (h *BookingHandler) RemovePart(c *gin.Context) {
	partID := c.Param("partId")
	h.mutate(c, func(b models.Booking, _ models.Actor) (models.Booking, error) {
		return booking.RemovePart(b, partID)
	})
}

// AddSchedule appends a time slot.
func (h *BookingHandler) AddSchedule(c *gin.Context) {
	var input struct {
		Slot models.TimeSlot `json:"slot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.mutate(c, func(b models.Booking, _ models.Actor) (models.Booking, error) {
		return booking.AddSchedule(b, input.Slot)
	})
}

// RemoveSchedule drops the time slot at an index.
func (h *BookingHandler) RemoveSchedule(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	h.mutate(c, func(b models.Booking, _ models.Actor) (models.Booking, error) {
		return booking.RemoveSchedule(b, index)
	})
}

// EditSchedule edits one field of a time slot.
func (h *BookingHandler) EditSchedule(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var input struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.mutate(c, func(b models.Booking, _ models.Actor) (models.Booking, error) {
		return booking.EditScheduleField(b, index, booking.ScheduleField(input.Field), input.Value)
	})
}

// SetMechanic sets or clears the assigned mechanic. Administrative only;
// mechanics claim work through the assignment endpoint instead.
func (h *BookingHandler) SetMechanic(c *gin.Context) {
	var input struct {
		Mechanic *models.Mechanic `json:"mechanic"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	h.mutate(c, func(b models.Booking, actor models.Actor) (models.Booking, error) {
		return booking.SetMechanic(b, actor, input.Mechanic)
	})
}

// mutate runs one edit against the working copy. Rejected edits answer with
// the untouched booking and the signal that stopped them.
func (h *BookingHandler) mutate(c *gin.Context, op func(models.Booking, models.Actor) (models.Booking, error)) {
	ctx := c.Request.Context()
	b, err := h.Svc.Working(ctx, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}

	updated, opErr := op(b, middleware.Actor(c))
	if opErr != nil {
		c.JSON(signalStatus(opErr), gin.H{
			"error":   opErr.Error(),
			"booking": b,
			"quote":   booking.PriceBooking(b),
		})
		return
	}

	if err := h.Svc.PutWorking(ctx, updated); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store working copy", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated, "quote": booking.PriceBooking(updated)})
}

func signalStatus(err error) int {
	switch {
	case booking.IsSignal(err, booking.CodeForbidden):
		return http.StatusForbidden
	case booking.IsSignal(err, booking.CodeNotFound), booking.IsSignal(err, booking.CodeBadIndex):
		return http.StatusNotFound
	case booking.IsSignal(err, booking.CodeDuplicate), booking.IsSignal(err, booking.CodeOutOfStock):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid index", c.Param("index"))
		return 0, false
	}
	return index, true
}
