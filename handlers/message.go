package handlers

import (
	"net/http"

	"fieldportal/services/message"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageHandler serves booking messages.
type MessageHandler struct {
	Service message.MessageService
}

func NewMessageHandler(svc message.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

// CreateMessageHandler handles POST /api/messages.
func (h *MessageHandler) CreateMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		BookingID string `json:"bookingId" binding:"required"`
		UserID    string `json:"userId" binding:"required"`
		Content   string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.Service.Create(req.BookingID, req.UserID, req.Content)
	if err != nil {
		logger.Error("Failed to create message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetMessagesByBookingHandler handles GET /api/messages/booking/:bookingId.
func (h *MessageHandler) GetMessagesByBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("bookingId")

	msgs, err := h.Service.ByBooking(bookingID)
	if err != nil {
		logger.Error("Failed to list messages", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// GetMessagesByUserHandler handles GET /api/messages/user/:userId.
func (h *MessageHandler) GetMessagesByUserHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.Param("userId")

	msgs, err := h.Service.ByUser(userID)
	if err != nil {
		logger.Error("Failed to list messages", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}
