package message

import "fieldportal/models"

// MessageRepository abstracts persistence of booking messages.
type MessageRepository interface {
	Insert(msg models.Message) error
	GetByBooking(bookingID string) ([]models.Message, error)
	GetByUser(userID string) ([]models.Message, error)
}
