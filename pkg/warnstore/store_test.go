package warnstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir())
}

func TestAddPreservesOrderAndIndexes(t *testing.T) {
	s := newTestStore(t)

	reasons := []string{"spam", "flood", "lenguaje inapropiado"}
	for i, reason := range reasons {
		warn, idx, err := s.Add("guild1", "user1", reason, "mod1")
		if err != nil {
			t.Fatalf("Add(%q) returned error: %v", reason, err)
		}
		if idx != i+1 {
			t.Errorf("Add(%q) index = %d, want %d", reason, idx, i+1)
		}
		if warn.ID == "" {
			t.Error("Add() should assign a warn ID")
		}
		if warn.Moderator != "mod1" {
			t.Errorf("Moderator = %v, want mod1", warn.Moderator)
		}
	}

	warns, err := s.List("guild1", "user1")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}

	if len(warns) != len(reasons) {
		t.Fatalf("List() length = %d, want %d", len(warns), len(reasons))
	}

	for i, reason := range reasons {
		if warns[i].Reason != reason {
			t.Errorf("warns[%d].Reason = %q, want %q", i, warns[i].Reason, reason)
		}
	}
}

func TestRemoveAtShiftsIndexes(t *testing.T) {
	s := newTestStore(t)

	for _, reason := range []string{"a", "b", "c", "d"} {
		if _, _, err := s.Add("g", "u", reason, "mod"); err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
	}

	// Eliminar la advertencia #2 ("b")
	removed, err := s.RemoveAt("g", "u", 2)
	if err != nil {
		t.Fatalf("RemoveAt(2) returned error: %v", err)
	}
	if removed.Reason != "b" {
		t.Errorf("RemoveAt(2) removed %q, want %q", removed.Reason, "b")
	}

	warns, _ := s.List("g", "u")
	want := []string{"a", "c", "d"}
	if len(warns) != len(want) {
		t.Fatalf("List() length = %d, want %d", len(warns), len(want))
	}
	for i, reason := range want {
		if warns[i].Reason != reason {
			t.Errorf("después de RemoveAt, warns[%d].Reason = %q, want %q", i, warns[i].Reason, reason)
		}
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	s := newTestStore(t)
	s.Add("g", "u", "solo una", "mod")

	for _, idx := range []int{0, -1, 2, 99} {
		if _, err := s.RemoveAt("g", "u", idx); err != ErrIndexOutOfRange {
			t.Errorf("RemoveAt(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestRemoveLastWarnDropsUserKey(t *testing.T) {
	s := newTestStore(t)
	s.Add("g", "u", "única", "mod")

	if _, err := s.RemoveAt("g", "u", 1); err != nil {
		t.Fatalf("RemoveAt(1) returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.Dir(), "g", "warns.json"))
	if err != nil {
		t.Fatalf("reading ledger file: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("ledger file is not valid JSON: %v", err)
	}
	if _, ok := raw["u"]; ok {
		t.Error("user key should be removed once their last warn is gone")
	}
}

func TestEnsureLedgerIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.EnsureLedger("g"); err != nil {
		t.Fatalf("EnsureLedger() returned error: %v", err)
	}

	if _, _, err := s.Add("g", "u", "dato existente", "mod"); err != nil {
		t.Fatalf("Add() returned error: %v", err)
	}

	// Re-invocar EnsureLedger nunca debe truncar datos existentes
	for i := 0; i < 3; i++ {
		if err := s.EnsureLedger("g"); err != nil {
			t.Fatalf("EnsureLedger() repetido returned error: %v", err)
		}
	}

	warns, err := s.List("g", "u")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(warns) != 1 || warns[0].Reason != "dato existente" {
		t.Errorf("EnsureLedger truncated existing data: %+v", warns)
	}
}

func TestListUnknownUserIsEmpty(t *testing.T) {
	s := newTestStore(t)

	warns, err := s.List("g", "desconocido")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("List() de usuario sin advertencias = %d entradas, want 0", len(warns))
	}

	// El archivo debe existir tras el primer acceso
	if _, err := os.Stat(filepath.Join(s.Dir(), "g", "warns.json")); err != nil {
		t.Errorf("ledger file should exist after first read: %v", err)
	}
}

func TestCountAll(t *testing.T) {
	s := newTestStore(t)
	s.Add("g", "u1", "a", "mod")
	s.Add("g", "u1", "b", "mod")
	s.Add("g", "u2", "c", "mod")

	total, err := s.CountAll("g")
	if err != nil {
		t.Fatalf("CountAll() returned error: %v", err)
	}
	if total != 3 {
		t.Errorf("CountAll() = %d, want 3", total)
	}

	n, _ := s.Count("g", "u1")
	if n != 2 {
		t.Errorf("Count(u1) = %d, want 2", n)
	}
}

func TestConcurrentAdds(t *testing.T) {
	s := newTestStore(t)

	const writers = 8
	const perWriter = 5

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, _, err := s.Add("g", "u", "concurrente", "mod"); err != nil {
					t.Errorf("Add() returned error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	warns, err := s.List("g", "u")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(warns) != writers*perWriter {
		t.Errorf("List() length = %d, want %d (escrituras perdidas)", len(warns), writers*perWriter)
	}
}

func TestGuildsAreIsolated(t *testing.T) {
	s := newTestStore(t)
	s.Add("g1", "u", "en g1", "mod")
	s.Add("g2", "u", "en g2", "mod")

	warns1, _ := s.List("g1", "u")
	warns2, _ := s.List("g2", "u")

	if len(warns1) != 1 || warns1[0].Reason != "en g1" {
		t.Errorf("g1 ledger = %+v", warns1)
	}
	if len(warns2) != 1 || warns2[0].Reason != "en g2" {
		t.Errorf("g2 ledger = %+v", warns2)
	}
}
