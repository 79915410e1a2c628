package mutes

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets the tests move time without sleeping
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestWatcher(unmute UnmuteFunc) (*Watcher, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	w := NewWatcher(time.Minute, unmute)
	w.now = clock.Now
	return w, clock
}

func TestSweepUnmutesOnlyExpired(t *testing.T) {
	var unmuted []string
	w, clock := newTestWatcher(func(guildID, userID string) error {
		unmuted = append(unmuted, guildID+"/"+userID)
		return nil
	})

	w.Track("g", "pronto", clock.Now().Add(1*time.Minute))
	w.Track("g", "tarde", clock.Now().Add(10*time.Minute))

	// Nadie ha expirado todavía
	if n := w.Sweep(); n != 0 {
		t.Errorf("Sweep() antes de expirar = %d, want 0", n)
	}

	clock.Advance(2 * time.Minute)

	if n := w.Sweep(); n != 1 {
		t.Errorf("Sweep() = %d, want 1", n)
	}
	if len(unmuted) != 1 || unmuted[0] != "g/pronto" {
		t.Errorf("unmuted = %v, want [g/pronto]", unmuted)
	}
	if w.Active("g", "pronto") {
		t.Error("entry should be removed after successful unmute")
	}
	if !w.Active("g", "tarde") {
		t.Error("unexpired entry should stay tracked")
	}
}

func TestSweepExactExpiryCounts(t *testing.T) {
	calls := 0
	w, clock := newTestWatcher(func(guildID, userID string) error {
		calls++
		return nil
	})

	expiry := clock.Now().Add(5 * time.Minute)
	w.Track("g", "u", expiry)

	// now == expiry debe silenciar (now >= expiry)
	clock.Advance(5 * time.Minute)
	if n := w.Sweep(); n != 1 {
		t.Errorf("Sweep() con now == expiry = %d, want 1", n)
	}
	if calls != 1 {
		t.Errorf("unmute calls = %d, want 1", calls)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	calls := 0
	w, clock := newTestWatcher(func(guildID, userID string) error {
		calls++
		return nil
	})

	w.Track("g", "u", clock.Now().Add(time.Minute))
	clock.Advance(2 * time.Minute)

	w.Sweep()
	w.Sweep()
	w.Sweep()

	if calls != 1 {
		t.Errorf("repeated sweeps called unmute %d times, want 1", calls)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.Len())
	}
}

func TestFailedUnmuteIsRetried(t *testing.T) {
	fail := true
	calls := 0
	w, clock := newTestWatcher(func(guildID, userID string) error {
		calls++
		if fail {
			return fmt.Errorf("API caída")
		}
		return nil
	})

	w.Track("g", "u", clock.Now().Add(time.Minute))
	clock.Advance(2 * time.Minute)

	if n := w.Sweep(); n != 0 {
		t.Errorf("Sweep() con unmute fallido = %d, want 0", n)
	}
	if w.Len() != 1 {
		t.Error("failed unmute should keep the entry tracked")
	}

	fail = false
	if n := w.Sweep(); n != 1 {
		t.Errorf("Sweep() de reintento = %d, want 1", n)
	}
	if calls != 2 {
		t.Errorf("unmute calls = %d, want 2", calls)
	}
}

func TestForgetAndRemaining(t *testing.T) {
	w, clock := newTestWatcher(func(guildID, userID string) error { return nil })

	w.Track("g", "u", clock.Now().Add(10*time.Minute))

	if got := w.Remaining("g", "u"); got != 10*time.Minute {
		t.Errorf("Remaining() = %v, want %v", got, 10*time.Minute)
	}

	w.Forget("g", "u")
	if w.Active("g", "u") {
		t.Error("Active() should be false after Forget()")
	}
	if got := w.Remaining("g", "u"); got != 0 {
		t.Errorf("Remaining() tras Forget = %v, want 0", got)
	}
}

func TestTrackReplacesExpiry(t *testing.T) {
	w, clock := newTestWatcher(func(guildID, userID string) error { return nil })

	w.Track("g", "u", clock.Now().Add(1*time.Minute))
	w.Track("g", "u", clock.Now().Add(30*time.Minute))

	clock.Advance(5 * time.Minute)
	if n := w.Sweep(); n != 0 {
		t.Errorf("Sweep() = %d, want 0 (expiry fue reemplazado)", n)
	}
	if !w.Active("g", "u") {
		t.Error("re-tracked mute should still be active")
	}
}
