package mod

import (
	"strings"
	"testing"
)

// TestWarnDMMessage verifies the notice sent to warned users
func TestWarnDMMessage(t *testing.T) {
	msg := warnDMMessage("Servidor de Prueba", "Spam en #general", 3)

	if !strings.Contains(msg, "Servidor de Prueba") {
		t.Error("DM should name the guild")
	}
	if !strings.Contains(msg, "Spam en #general") {
		t.Error("DM should include the reason")
	}
	if !strings.Contains(msg, "#3") {
		t.Error("DM should include the warning count")
	}
}
