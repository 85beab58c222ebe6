package routes

import (
	"net/http"
	"time"

	"fieldportal/handlers"
	"fieldportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.POST("/verify-credentials", hb.VerifyCredentialsHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.GET("/email/:email", hb.GetUserByEmailHandler)
	}
}

// RegisterBookingRoutes registers the bookings surface.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.GET("/:id/attachments", hb.GetBookingAttachmentsHandler)
	}
}

// RegisterAttachmentRoutes registers the attachment proxy endpoints.
func RegisterAttachmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/attachments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:bookingId/:attachmentId", hb.StreamAttachmentHandler)
		api.GET("/:bookingId/:attachmentId/metadata", hb.GetAttachmentMetadataHandler)
	}
}

// RegisterMessageRoutes registers booking-message endpoints.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateMessageHandler)
		api.GET("/booking/:bookingId", hb.GetMessagesByBookingHandler)
		api.GET("/user/:userId", hb.GetMessagesByUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fieldportal"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAttachmentRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterHealthRoute(r)
}
