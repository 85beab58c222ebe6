package message

import (
	messageRepo "fieldportal/database/repository/message"
	"fieldportal/models"
)

// MessageService manages booking messages.
type MessageService interface {
	Create(bookingID, userID, content string) (*models.Message, error)
	ByBooking(bookingID string) ([]models.Message, error)
	ByUser(userID string) ([]models.Message, error)
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	Repo messageRepo.MessageRepository
}
