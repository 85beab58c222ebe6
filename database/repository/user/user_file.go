package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"fieldportal/models"
)

// FileUserRepo keeps users in one JSON file. The mutex serializes the
// read-modify-write cycle within this process; a second process writing the
// same file is last-writer-wins. That limitation is inherited from the
// storage contract, not an oversight.
type FileUserRepo struct {
	path string
	mu   sync.Mutex
}

// NewFileUserRepo builds a repo storing users under dataDir/users.json.
func NewFileUserRepo(dataDir string) *FileUserRepo {
	return &FileUserRepo{path: filepath.Join(dataDir, "users.json")}
}

func (r *FileUserRepo) load() ([]models.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	return users, nil
}

func (r *FileUserRepo) save(users []models.User) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

func (r *FileUserRepo) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if match(&users[i]) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *FileUserRepo) GetByID(id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *FileUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *FileUserRepo) GetByPhone(phone string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.PhoneNumber == phone })
}

func (r *FileUserRepo) GetByUsername(username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

// Insert appends the user to the store.
func (r *FileUserRepo) Insert(user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load()
	if err != nil {
		return err
	}
	users = append(users, user)
	return r.save(users)
}
