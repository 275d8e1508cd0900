package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	resdto "shootbook/internal/handler/dto/response"
	"shootbook/internal/handler/httperr"
	"shootbook/internal/pkg/errs"
	"shootbook/internal/usecase/commands"
	"shootbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ReservationHandler is the administrator's ops surface over the same
// commands the chat flow uses. Every route behind it is already gated by
// the admin-token middleware.
type ReservationHandler struct {
	admin        commands.AdminCommands
	reservations queries.ReservationQueries
	availability queries.AvailabilityQueries
	adminID      int64
}

func NewReservationHandler(
	admin commands.AdminCommands,
	reservations queries.ReservationQueries,
	availability queries.AvailabilityQueries,
	adminID int64,
) *ReservationHandler {
	return &ReservationHandler{
		admin:        admin,
		reservations: reservations,
		availability: availability,
		adminID:      adminID,
	}
}

func (h *ReservationHandler) ListActive(c *gin.Context) {
	list, err := h.admin.ListActive(c.Request.Context(), h.adminID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reservations": resdto.FromReservations(list),
	})
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	res, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) MarkDone(c *gin.Context) {
	h.transition(c, h.admin.MarkDone)
}

func (h *ReservationHandler) MarkCancelled(c *gin.Context) {
	h.transition(c, h.admin.MarkCancelled)
}

func (h *ReservationHandler) Availability(c *gin.Context) {
	date := c.Param("date")

	states, err := h.availability.AvailableTimes(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected dd.mm.yyyy", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute availability", nil)
		return
	}

	times := make(map[string]string, len(states))
	for label, state := range states {
		times[label] = string(state)
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Date: date, Times: times})
}

func (h *ReservationHandler) transition(c *gin.Context, op func(ctx context.Context, callerID, id int64) error) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	err := op(c.Request.Context(), h.adminID, id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"id":     id,
			"status": "updated",
		})
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is no longer active", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update reservation", nil)
	}
}

func (h *ReservationHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return 0, false
	}
	return id, true
}
