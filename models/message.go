// models/message.go
package models

import "time"

// Message is a portal message attached to a booking.
type Message struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
