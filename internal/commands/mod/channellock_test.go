package mod

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestApplySendLockPreservesBits verifies that locking only flips the
// SendMessages bit and keeps unrelated overwrite bits intact
func TestApplySendLockPreservesBits(t *testing.T) {
	allow := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages)
	deny := int64(discordgo.PermissionAddReactions)

	newAllow, newDeny, remove := applySendLock(allow, deny, true)

	if newAllow&discordgo.PermissionSendMessages != 0 {
		t.Error("lock should clear SendMessages from allow")
	}
	if newAllow&discordgo.PermissionViewChannel == 0 {
		t.Error("lock should preserve unrelated allow bits")
	}
	if newDeny&discordgo.PermissionSendMessages == 0 {
		t.Error("lock should set SendMessages in deny")
	}
	if newDeny&discordgo.PermissionAddReactions == 0 {
		t.Error("lock should preserve unrelated deny bits")
	}
	if remove {
		t.Error("overwrite with remaining bits must not be removed")
	}
}

// TestApplySendLockUnlockClearsOnlyDenyBit verifies that unlocking clears the
// SendMessages deny bit and nothing else
func TestApplySendLockUnlockClearsOnlyDenyBit(t *testing.T) {
	allow := int64(discordgo.PermissionViewChannel)
	deny := int64(discordgo.PermissionSendMessages | discordgo.PermissionAddReactions)

	newAllow, newDeny, remove := applySendLock(allow, deny, false)

	if newAllow != allow {
		t.Errorf("unlock must not touch allow bits: got %d, want %d", newAllow, allow)
	}
	if newDeny&discordgo.PermissionSendMessages != 0 {
		t.Error("unlock should clear the SendMessages deny bit")
	}
	if newDeny&discordgo.PermissionAddReactions == 0 {
		t.Error("unlock should preserve unrelated deny bits")
	}
	if remove {
		t.Error("overwrite with remaining bits must not be removed")
	}
}

// TestApplySendLockRemovesEmptyOverwrite verifies that an overwrite holding
// nothing but the lock bit is deleted on unlock
func TestApplySendLockRemovesEmptyOverwrite(t *testing.T) {
	newAllow, newDeny, remove := applySendLock(0, discordgo.PermissionSendMessages, false)

	if newAllow != 0 || newDeny != 0 {
		t.Errorf("expected empty overwrite, got allow=%d deny=%d", newAllow, newDeny)
	}
	if !remove {
		t.Error("an all-zero overwrite should be removed")
	}
}

// TestApplySendLockIdempotent verifies that locking twice yields the same bits
func TestApplySendLockIdempotent(t *testing.T) {
	allow, deny, _ := applySendLock(discordgo.PermissionSendMessages, 0, true)
	allow2, deny2, _ := applySendLock(allow, deny, true)

	if allow != allow2 || deny != deny2 {
		t.Errorf("second lock changed bits: (%d,%d) -> (%d,%d)", allow, deny, allow2, deny2)
	}
}
