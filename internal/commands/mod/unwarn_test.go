package mod

import (
	"testing"
	"unicode/utf8"
)

// TestTruncate verifies rune-safe shortening of autocomplete labels
func TestTruncate(t *testing.T) {
	if got := truncate("corto", 10); got != "corto" {
		t.Errorf("truncate should leave short strings alone, got %q", got)
	}

	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate(\"abcdef\", 4) = %q, want %q", got, "abc…")
	}

	// Razón con caracteres multibyte justo en el corte
	reason := "Spam de ñandúes en el canal de anuncios ááááá"
	got := truncate(reason, 10)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if gotRunes := []rune(got); len(gotRunes) != 10 {
		t.Errorf("truncated length = %d runes, want 10", len(gotRunes))
	}

	exact := "áéíóú"
	if got := truncate(exact, 5); got != exact {
		t.Errorf("truncate at exact rune length should not cut, got %q", got)
	}
}
