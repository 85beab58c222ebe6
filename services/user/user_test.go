package user

import (
	"testing"

	userRepo "fieldportal/database/repository/user"
	"fieldportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *DefaultUserService {
	t.Helper()
	utils.InitJWT("test-secret")
	return &DefaultUserService{Repo: userRepo.NewFileUserRepo(t.TempDir())}
}

func registration() RegistrationRequest {
	return RegistrationRequest{
		Email:       "jo@example.com",
		Username:    "jo",
		PhoneNumber: "5551234567",
		Password:    "hunter2hunter2",
	}
}

func TestRegisterAndLookup(t *testing.T) {
	svc := newService(t)

	pub, err := svc.Register(registration())
	require.NoError(t, err)
	require.NotEmpty(t, pub.ID)
	assert.Equal(t, "jo@example.com", pub.Email)

	byID, err := svc.GetUserByID(pub.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, pub.ID, byID.ID)

	byEmail, err := svc.GetUserByEmail("jo@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	missing, err := svc.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRegisterConflicts(t *testing.T) {
	svc := newService(t)
	_, err := svc.Register(registration())
	require.NoError(t, err)

	dup := registration()
	dup.Username = "someone-else"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrEmailTaken)

	dup = registration()
	dup.Email = "other@example.com"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestVerifyCredentials(t *testing.T) {
	svc := newService(t)
	_, err := svc.Register(registration())
	require.NoError(t, err)

	pub, err := svc.VerifyCredentials("jo@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jo", pub.Username)

	_, err = svc.VerifyCredentials("jo@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.VerifyCredentials("nobody@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateByEmailOrPhone(t *testing.T) {
	svc := newService(t)
	_, err := svc.Register(registration())
	require.NoError(t, err)

	auth, err := svc.Authenticate("jo@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)

	sub, err := utils.ExtractIDFromToken(auth.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.ID, sub)

	byPhone, err := svc.Authenticate("5551234567", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, auth.ID, byPhone.ID)

	_, err = svc.Authenticate("5551234567", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
