package mod

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCanViewWarnlist verifies self-lookup and the ManageMessages gate
func TestCanViewWarnlist(t *testing.T) {
	plain := &discordgo.Member{Permissions: 0}
	moderator := &discordgo.Member{Permissions: discordgo.PermissionManageMessages}

	if !canViewWarnlist(plain, "user-1", "user-1") {
		t.Error("self-lookup should always be allowed")
	}

	if canViewWarnlist(plain, "user-1", "user-2") {
		t.Error("viewing others without ManageMessages should be denied")
	}

	if !canViewWarnlist(moderator, "user-1", "user-2") {
		t.Error("viewing others with ManageMessages should be allowed")
	}

	if canViewWarnlist(nil, "user-1", "user-2") {
		t.Error("a nil member must not see other users' warnings")
	}

	if !canViewWarnlist(nil, "user-1", "user-1") {
		t.Error("self-lookup should work even without member data")
	}
}
