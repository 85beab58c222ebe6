package user

import (
	"fmt"
	"strings"
	"time"

	"fieldportal/models"
	"fieldportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// Register creates a new account after checking email and username
// availability. The password is stored as a bcrypt hash, never in clear.
func (s *DefaultUserService) Register(req RegistrationRequest) (*models.PublicUser, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		logger.Error("Register: email availability check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.Repo.GetByUsername(req.Username)
	if err != nil {
		logger.Error("Register: username availability check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: password hashing failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Username:     req.Username,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Insert(newUser); err != nil {
		logger.Error("Register: persisting user failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	logger.Info("user registered", zap.String("id", newUser.ID))
	pub := newUser.Public()
	return &pub, nil
}

// Authenticate verifies the credentials and issues a session token. The
// identifier may be an email address or a phone number; anything containing
// an "@" is treated as an email.
func (s *DefaultUserService) Authenticate(emailOrPhone, password string) (*AuthResponse, error) {
	var (
		usr *models.PublicUser
		err error
	)
	if strings.Contains(emailOrPhone, "@") {
		usr, err = s.VerifyCredentials(emailOrPhone, password)
	} else {
		usr, err = s.VerifyCredentialsByPhone(emailOrPhone, password)
	}
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Authenticate: token generation failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:          usr.ID,
		Token:       token,
		Username:    usr.Username,
		Email:       usr.Email,
		PhoneNumber: usr.PhoneNumber,
	}, nil
}

// VerifyCredentials checks an email + password pair.
func (s *DefaultUserService) VerifyCredentials(email, password string) (*models.PublicUser, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return checkPassword(usr, password)
}

// VerifyCredentialsByPhone checks a phone + password pair.
func (s *DefaultUserService) VerifyCredentialsByPhone(phone, password string) (*models.PublicUser, error) {
	usr, err := s.Repo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	return checkPassword(usr, password)
}

func checkPassword(usr *models.User, password string) (*models.PublicUser, error) {
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	pub := usr.Public()
	return &pub, nil
}

// GetUserByID returns the public view of a user, or nil when absent.
func (s *DefaultUserService) GetUserByID(id string) (*models.PublicUser, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil || usr == nil {
		return nil, err
	}
	pub := usr.Public()
	return &pub, nil
}

// GetUserByEmail returns the public view of a user, or nil when absent.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.PublicUser, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil || usr == nil {
		return nil, err
	}
	pub := usr.Public()
	return &pub, nil
}
