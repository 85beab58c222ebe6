package user

import (
	userRepo "fieldportal/database/repository/user"
	"fieldportal/models"
)

// UserService manages portal accounts and credential verification.
type UserService interface {
	Register(req RegistrationRequest) (*models.PublicUser, error)
	Authenticate(emailOrPhone, password string) (*AuthResponse, error)
	VerifyCredentials(email, password string) (*models.PublicUser, error)
	VerifyCredentialsByPhone(phone, password string) (*models.PublicUser, error)
	GetUserByID(id string) (*models.PublicUser, error)
	GetUserByEmail(email string) (*models.PublicUser, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest carries the fields required to create an account.
type RegistrationRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
