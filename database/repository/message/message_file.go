package message

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

// FileMessageRepo keeps messages in one JSON file. Same consistency contract
// as the user store: serialized within the process, last-writer-wins across
// processes.
type FileMessageRepo struct {
	path string
	mu   sync.Mutex
}

// NewFileMessageRepo builds a repo storing messages under dataDir/messages.json.
func NewFileMessageRepo(dataDir string) *FileMessageRepo {
	return &FileMessageRepo{path: filepath.Join(dataDir, "messages.json")}
}

func (r *FileMessageRepo) load() ([]models.Message, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read messages file: %w", err)
	}
	var msgs []models.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages file: %w", err)
	}
	return msgs, nil
}

func (r *FileMessageRepo) save(msgs []models.Message) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("write messages file: %w", err)
	}
	return nil
}

// Insert appends the message to the store.
func (r *FileMessageRepo) Insert(msg models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs, err := r.load()
	if err != nil {
		return err
	}
	msgs = append(msgs, msg)
	return r.save(msgs)
}

func (r *FileMessageRepo) GetByBooking(bookingID string) ([]models.Message, error) {
	return r.filter(func(m *models.Message) bool { return m.BookingID == bookingID })
}

func (r *FileMessageRepo) GetByUser(userID string) ([]models.Message, error) {
	return r.filter(func(m *models.Message) bool { return m.UserID == userID })
}

func (r *FileMessageRepo) filter(match func(*models.Message) bool) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.Message, 0)
	for i := range msgs {
		if match(&msgs[i]) {
			out = append(out, msgs[i])
		}
	}
	return out, nil
}
