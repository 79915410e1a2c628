// Package warnstore persists the per-guild warning ledger.
// Each guild owns a single JSON document at <dataDir>/<guildID>/warns.json
// mapping user IDs to their warnings in chronological order.
package warnstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/models"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ErrIndexOutOfRange is returned by RemoveAt for indexes outside 1..len(warns)
var ErrIndexOutOfRange = fmt.Errorf("índice de advertencia fuera de rango")

// Store provides serialized read-modify-write access to the warn ledgers
type Store struct {
	dir string

	mu     sync.Mutex // protege el mapa de locks
	guilds map[string]*sync.Mutex
}

// New creates a Store rooted at dir. The directory is created lazily.
func New(dir string) *Store {
	return &Store{
		dir:    dir,
		guilds: make(map[string]*sync.Mutex),
	}
}

// Dir returns the root data directory of the store
func (s *Store) Dir() string {
	return s.dir
}

// guildLock returns the mutex that serializes access to one guild's file
func (s *Store) guildLock(guildID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.guilds[guildID]
	if !ok {
		lock = &sync.Mutex{}
		s.guilds[guildID] = lock
	}
	return lock
}

// path returns the ledger file path for a guild
func (s *Store) path(guildID string) string {
	return filepath.Join(s.dir, guildID, "warns.json")
}

// EnsureLedger creates the guild directory and an empty ledger file if
// missing. Re-invoking it never truncates existing data.
func (s *Store) EnsureLedger(guildID string) error {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	return s.ensureLocked(guildID)
}

// ensureLocked must be called with the guild lock held
func (s *Store) ensureLocked(guildID string) error {
	if err := os.MkdirAll(filepath.Join(s.dir, guildID), 0755); err != nil {
		return fmt.Errorf("creando directorio del servidor %s: %w", guildID, err)
	}

	path := s.path(guildID)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	return s.writeLocked(guildID, models.GuildLedger{})
}

// readLocked loads the ledger; must be called with the guild lock held
func (s *Store) readLocked(guildID string) (models.GuildLedger, error) {
	if err := s.ensureLocked(guildID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(guildID))
	if err != nil {
		return nil, fmt.Errorf("leyendo ledger del servidor %s: %w", guildID, err)
	}

	ledger := models.GuildLedger{}
	if len(data) == 0 {
		return ledger, nil
	}
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("ledger corrupto del servidor %s: %w", guildID, err)
	}
	return ledger, nil
}

// writeLocked persists the ledger atomically (temp file + rename);
// must be called with the guild lock held
func (s *Store) writeLocked(guildID string, ledger models.GuildLedger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return err
	}

	path := s.path(guildID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("escribiendo ledger temporal del servidor %s: %w", guildID, err)
	}
	return os.Rename(tmp, path)
}

// Add appends a warning for a user and returns the stored entry together
// with its 1-based index.
func (s *Store) Add(guildID, userID, reason, moderatorID string) (models.Warn, int, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.readLocked(guildID)
	if err != nil {
		return models.Warn{}, 0, err
	}

	warn := models.Warn{
		Reason:    reason,
		Moderator: moderatorID,
		ID:        uuid.New().String(),
		Timestamp: time.Now().Unix(),
	}

	ledger[userID] = append(ledger[userID], warn)
	if err := s.writeLocked(guildID, ledger); err != nil {
		return models.Warn{}, 0, err
	}

	return warn, len(ledger[userID]), nil
}

// List returns a user's warnings in insertion order. A user with no
// warnings yields an empty slice, never an error.
func (s *Store) List(guildID, userID string) ([]models.Warn, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.readLocked(guildID)
	if err != nil {
		return nil, err
	}
	return ledger[userID], nil
}

// RemoveAt removes the warning at the given 1-based index, shifting later
// entries down by one, and returns the removed entry.
func (s *Store) RemoveAt(guildID, userID string, index int) (models.Warn, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.readLocked(guildID)
	if err != nil {
		return models.Warn{}, err
	}

	warns := ledger[userID]
	if index < 1 || index > len(warns) {
		return models.Warn{}, ErrIndexOutOfRange
	}

	removed := warns[index-1]
	warns = append(warns[:index-1], warns[index:]...)

	if len(warns) == 0 {
		delete(ledger, userID)
	} else {
		ledger[userID] = warns
	}

	if err := s.writeLocked(guildID, ledger); err != nil {
		return models.Warn{}, err
	}
	return removed, nil
}

// Count returns the number of warnings a user has
func (s *Store) Count(guildID, userID string) (int, error) {
	warns, err := s.List(guildID, userID)
	if err != nil {
		return 0, err
	}
	return len(warns), nil
}

// CountAll returns the total number of warnings stored for a guild
func (s *Store) CountAll(guildID string) (int, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	ledger, err := s.readLocked(guildID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, warns := range ledger {
		total += len(warns)
	}
	return total, nil
}

var (
	store     *Store
	storeOnce sync.Once
)

// Init initializes the global store rooted at dir
func Init(dir string) *Store {
	storeOnce.Do(func() {
		store = New(dir)
	})
	return store
}

// Get returns the global store instance
func Get() *Store {
	return store
}
