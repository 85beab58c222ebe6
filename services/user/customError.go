package user

import "errors"

// ErrEmailTaken signals a registration conflict on the email address.
var ErrEmailTaken = errors.New("a user with this email already exists")

// ErrUsernameTaken signals a registration conflict on the username.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidCredentials signals a failed email/phone + password check.
var ErrInvalidCredentials = errors.New("invalid email or password")
