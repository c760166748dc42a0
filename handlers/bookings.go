package handlers

import (
	"errors"
	"net/http"

	"trimly/services/booking"
	"trimly/store"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking queries and cancellation.
type BookingHandler struct {
	Svc *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// ListBookings returns every booking with its status.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.Svc.List()})
}

// GetBooking returns a single booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	b, ok := h.Svc.Get(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "booking not found", id)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking releases the booking's slot and removes the record.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Cancel(id); err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", id)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "booking_id": id})
}
