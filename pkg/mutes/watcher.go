// Package mutes tracks temporary mutes in memory and reverts them when they
// expire. State is intentionally not persisted: a restart clears all mutes.
package mutes

import (
	"fmt"
	"sync"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/logger"
)

// UnmuteFunc reverts a mute (removes the mute role). Returning an error keeps
// the entry tracked so the next sweep retries it.
type UnmuteFunc func(guildID, userID string) error

// Watcher holds the mute-expiry map and sweeps it periodically
type Watcher struct {
	mu      sync.Mutex
	entries map[string]time.Time // clave guildID/userID

	unmute   UnmuteFunc
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once

	now func() time.Time // inyectable para tests
}

// NewWatcher creates a Watcher that invokes unmute for expired entries.
// interval is how often the map is scanned (one minute in production).
func NewWatcher(interval time.Duration, unmute UnmuteFunc) *Watcher {
	return &Watcher{
		entries:  make(map[string]time.Time),
		unmute:   unmute,
		interval: interval,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
}

func key(guildID, userID string) string {
	return guildID + "/" + userID
}

// Track records (or replaces) the mute expiry for a user
func (w *Watcher) Track(guildID, userID string, expiry time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries[key(guildID, userID)] = expiry
}

// Forget drops the tracked mute for a user, if any
func (w *Watcher) Forget(guildID, userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entries, key(guildID, userID))
}

// Active reports whether the user has a mute that has not expired yet
func (w *Watcher) Active(guildID, userID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	expiry, ok := w.entries[key(guildID, userID)]
	return ok && w.now().Before(expiry)
}

// Remaining returns the time left on a tracked mute, or zero when untracked
func (w *Watcher) Remaining(guildID, userID string) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	expiry, ok := w.entries[key(guildID, userID)]
	if !ok {
		return 0
	}
	left := expiry.Sub(w.now())
	if left < 0 {
		return 0
	}
	return left
}

// Len returns the number of tracked mutes
func (w *Watcher) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

// Start launches the sweep loop in a goroutine
func (w *Watcher) Start() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Sweep()
			case <-w.stopChan:
				return
			}
		}
	}()
	logger.System(fmt.Sprintf("Vigilante de silencios iniciado (barrido cada %v)", w.interval), "Mutes")
}

// Stop terminates the sweep loop
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
}

// Sweep scans the map once: every entry whose expiry has passed is unmuted
// and removed. Entries whose unmute fails stay for the next sweep. Returns
// the number of users unmuted.
func (w *Watcher) Sweep() int {
	now := w.now()

	// Copia de los vencidos fuera del lock: el callback habla con Discord
	type expired struct {
		guildID, userID string
	}
	var due []expired

	w.mu.Lock()
	for k, expiry := range w.entries {
		if !now.Before(expiry) {
			// k siempre tiene la forma guildID/userID
			for i := 0; i < len(k); i++ {
				if k[i] == '/' {
					due = append(due, expired{guildID: k[:i], userID: k[i+1:]})
					break
				}
			}
		}
	}
	w.mu.Unlock()

	count := 0
	for _, e := range due {
		if err := w.unmute(e.guildID, e.userID); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo quitar el silencio a %s en %s: %v (se reintentará)", e.userID, e.guildID, err), "Mutes")
			continue
		}
		w.Forget(e.guildID, e.userID)
		count++
	}

	if count > 0 {
		logger.Info(fmt.Sprintf("Barrido completado: %d silencio(s) expirados", count), "Mutes")
	}
	return count
}

var (
	watcher     *Watcher
	watcherOnce sync.Once
)

// Init initializes the global watcher
func Init(interval time.Duration, unmute UnmuteFunc) *Watcher {
	watcherOnce.Do(func() {
		watcher = NewWatcher(interval, unmute)
	})
	return watcher
}

// Get returns the global watcher instance
func Get() *Watcher {
	return watcher
}
