// File: fieldportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldportal/config"
	messageRepoPkg "fieldportal/database/repository/message"
	userRepoPkg "fieldportal/database/repository/user"
	"fieldportal/handlers"
	"fieldportal/middleware"
	"fieldportal/routes"
	"fieldportal/services/booking"
	"fieldportal/services/message"
	"fieldportal/services/servicem8"
	"fieldportal/services/user"
	"fieldportal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	utils.InitJWT(config.AppConfig.JWTSecret)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewFileUserRepo(config.AppConfig.DataDir)
	messageRepo := messageRepoPkg.NewFileMessageRepo(config.AppConfig.DataDir)

	// upstream client.
	m8 := servicem8.New(config.AppConfig.ServiceM8APIKey, config.AppConfig.ServiceM8BaseURL)

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	messageService := &message.DefaultMessageService{
		Repo: messageRepo,
	}
	bookingService := &booking.DefaultBookingService{
		M8: m8,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	attachmentHandler := handlers.NewAttachmentHandler(m8)
	userHandler := handlers.NewUserHandler(userService)
	messageHandler := handlers.NewMessageHandler(messageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		ListBookingsHandler:          bookingHandler.ListBookingsHandler,
		GetBookingHandler:            bookingHandler.GetBookingHandler,
		GetBookingAttachmentsHandler: bookingHandler.GetBookingAttachmentsHandler,

		// Attachment endpoints.
		StreamAttachmentHandler:      attachmentHandler.StreamAttachmentHandler,
		GetAttachmentMetadataHandler: attachmentHandler.GetAttachmentMetadataHandler,

		// User endpoints.
		RegisterUserHandler:      userHandler.RegisterUserHandler,
		AuthenticateUserHandler:  userHandler.AuthenticateUserHandler,
		VerifyCredentialsHandler: userHandler.VerifyCredentialsHandler,
		GetUserByIDHandler:       userHandler.GetUserByIDHandler,
		GetUserByEmailHandler:    userHandler.GetUserByEmailHandler,

		// Message endpoints.
		CreateMessageHandler:        messageHandler.CreateMessageHandler,
		GetMessagesByBookingHandler: messageHandler.GetMessagesByBookingHandler,
		GetMessagesByUserHandler:    messageHandler.GetMessagesByUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
