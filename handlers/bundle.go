// File: fieldportal/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	ListBookingsHandler          gin.HandlerFunc
	GetBookingHandler            gin.HandlerFunc
	GetBookingAttachmentsHandler gin.HandlerFunc

	// Attachment endpoints
	StreamAttachmentHandler      gin.HandlerFunc
	GetAttachmentMetadataHandler gin.HandlerFunc

	// User endpoints
	RegisterUserHandler      gin.HandlerFunc
	AuthenticateUserHandler  gin.HandlerFunc
	VerifyCredentialsHandler gin.HandlerFunc
	GetUserByIDHandler       gin.HandlerFunc
	GetUserByEmailHandler    gin.HandlerFunc

	// Message endpoints
	CreateMessageHandler        gin.HandlerFunc
	GetMessagesByBookingHandler gin.HandlerFunc
	GetMessagesByUserHandler    gin.HandlerFunc
}
