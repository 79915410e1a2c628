package mod

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestMemberHasRole verifies the role membership check behind /unmute
func TestMemberHasRole(t *testing.T) {
	member := &discordgo.Member{
		Roles: []string{"111", "222", "333"},
	}

	if !memberHasRole(member, "222") {
		t.Error("memberHasRole should find an assigned role")
	}

	if memberHasRole(member, "999") {
		t.Error("memberHasRole should be false for an unassigned role")
	}

	if memberHasRole(nil, "111") {
		t.Error("memberHasRole should be false for a nil member")
	}

	if memberHasRole(&discordgo.Member{}, "111") {
		t.Error("memberHasRole should be false for a member with no roles")
	}
}
