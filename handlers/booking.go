package handlers

import (
	"net/http"

	"fieldportal/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the bookings surface.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler handles GET /api/bookings?email=&phone=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Query("email")
	phone := c.Query("phone")

	entries, err := h.Service.ListForCustomer(c.Request.Context(), email, phone)
	if err != nil {
		logger.Error("Failed to list bookings", zap.String("email", email), zap.Error(err))
		c.JSON(upstreamStatus(err), gin.H{"error": "Error fetching bookings"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	detail, err := h.Service.Detail(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(upstreamStatus(err), gin.H{"error": "Error fetching booking"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetBookingAttachmentsHandler handles GET /api/bookings/:id/attachments.
func (h *BookingHandler) GetBookingAttachmentsHandler(c *gin.Context) {
	entries := h.Service.Attachments(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, entries)
}
