package dashboard

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ArowuTest/intern-dashboard/internal/models"
)

// StorageKey is the key under which the signed-in participant is persisted
const StorageKey = "currentUser"

// Participant is the client-side view of the signed-in user
type Participant struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	ReferralCode    string   `json:"referralCode"`
	DonationsRaised int      `json:"donationsRaised"`
	Rewards         []string `json:"rewards"`
}

func participantFromIntern(intern *models.Intern) *Participant {
	p := &Participant{
		Name:            intern.Name,
		Email:           intern.Email,
		ReferralCode:    intern.ReferralCode,
		DonationsRaised: intern.DonationsRaised,
		Rewards:         append([]string(nil), intern.Rewards...),
	}
	if !intern.ID.IsZero() {
		p.ID = intern.ID.Hex()
	}
	return p
}

func participantFromDemo(demo *models.DemoData) *Participant {
	return &Participant{
		Name:            demo.Name,
		ReferralCode:    demo.ReferralCode,
		DonationsRaised: demo.DonationsRaised,
		Rewards:         append([]string(nil), demo.Rewards...),
	}
}

// SessionStore persists the signed-in participant between runs
type SessionStore interface {
	Load() (*Participant, error)
	Save(p *Participant) error
	Clear() error
}

// FileStore keeps a key/value map in a JSON file, the terminal
// counterpart of browser local storage.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the persisted participant, or nil when none is stored
func (s *FileStore) Load() (*Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return nil, err
	}
	raw, ok := items[StorageKey]
	if !ok {
		return nil, nil
	}

	var p Participant
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save persists p under StorageKey
func (s *FileStore) Save(p *Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	items, err := s.read()
	if err != nil {
		return err
	}
	items[StorageKey] = string(raw)
	return s.write(items)
}

// Clear removes the persisted participant
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	delete(items, StorageKey)
	return s.write(items)
}

func (s *FileStore) read() (map[string]string, error) {
	items := map[string]string{}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStore) write(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// MemoryStore is an in-process SessionStore
type MemoryStore struct {
	mu    sync.Mutex
	saved *Participant
}

// Load returns a copy of the stored participant
func (s *MemoryStore) Load() (*Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		return nil, nil
	}
	p := *s.saved
	return &p, nil
}

// Save stores a copy of p
func (s *MemoryStore) Save(p *Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	persisted := *p
	s.saved = &persisted
	return nil
}

// Clear drops the stored participant
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = nil
	return nil
}
