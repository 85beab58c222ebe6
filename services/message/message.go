package message

import (
	"fmt"
	"time"

	"fieldportal/models"
	"fieldportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create appends a new message for a booking.
func (s *DefaultMessageService) Create(bookingID, userID, content string) (*models.Message, error) {
	msg := models.Message{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Insert(msg); err != nil {
		utils.GetLogger().Error("Create message failed", zap.Error(err))
		return nil, fmt.Errorf("failed to save message")
	}
	return &msg, nil
}

// ByBooking lists the messages attached to one booking.
func (s *DefaultMessageService) ByBooking(bookingID string) ([]models.Message, error) {
	return s.Repo.GetByBooking(bookingID)
}

// ByUser lists the messages written by one user.
func (s *DefaultMessageService) ByUser(userID string) ([]models.Message, error) {
	return s.Repo.GetByUser(userID)
}
