package user

import "fieldportal/models"

// UserRepository abstracts persistence of portal accounts.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Insert(user models.User) error
}
