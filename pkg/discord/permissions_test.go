package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// interactionIn builds a guild interaction with the given member permissions
func interactionIn(guildID string, member *discordgo.Member) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			GuildID: guildID,
			Member:  member,
		},
	}
}

// TestEvaluatePermissions drives every denial branch of the dispatch gate
func TestEvaluatePermissions(t *testing.T) {
	noop := func(ctx *CommandContext) error { return nil }

	banCmd := NewCommand("ban", "Banea a un usuario", "mod", noop).
		WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
	devCmd := NewCommand("eval", "Evalúa código", "dev", noop).AsDev()

	moderator := &discordgo.Member{Permissions: discordgo.PermissionBanMembers}
	plain := &discordgo.Member{Permissions: 0}

	cases := []struct {
		name          string
		cmd           *Command
		interaction   *discordgo.InteractionCreate
		devGuildID    string
		botPerms      int64
		botPermsKnown bool
		wantDenied    bool
		wantFragment  string
	}{
		{
			name:          "authorized moderator passes",
			cmd:           banCmd,
			interaction:   interactionIn("guild-1", moderator),
			botPerms:      discordgo.PermissionBanMembers,
			botPermsKnown: true,
		},
		{
			name:         "dev command outside dev guild denied",
			cmd:          devCmd,
			interaction:  interactionIn("guild-1", moderator),
			devGuildID:   "dev-guild",
			wantDenied:   true,
			wantFragment: "servidor de desarrollo",
		},
		{
			name:        "dev command inside dev guild passes",
			cmd:         devCmd,
			interaction: interactionIn("dev-guild", moderator),
			devGuildID:  "dev-guild",
		},
		{
			name:         "user without permission denied",
			cmd:          banCmd,
			interaction:  interactionIn("guild-1", plain),
			wantDenied:   true,
			wantFragment: "No tienes permisos",
		},
		{
			name:         "missing member (DM invocation) denied",
			cmd:          banCmd,
			interaction:  interactionIn("", nil),
			wantDenied:   true,
			wantFragment: "dentro de un servidor",
		},
		{
			name:          "bot without permission denied",
			cmd:           banCmd,
			interaction:   interactionIn("guild-1", moderator),
			botPerms:      0,
			botPermsKnown: true,
			wantDenied:    true,
			wantFragment:  "No tengo los permisos",
		},
		{
			name:          "unknown bot permissions do not block",
			cmd:           banCmd,
			interaction:   interactionIn("guild-1", moderator),
			botPermsKnown: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			msg := evaluatePermissions(c.cmd, c.interaction, c.devGuildID, c.botPerms, c.botPermsKnown)

			if c.wantDenied && msg == "" {
				t.Fatal("dispatch should have been denied")
			}
			if !c.wantDenied && msg != "" {
				t.Fatalf("dispatch should have been allowed, got denial: %q", msg)
			}
			if c.wantFragment != "" && !strings.Contains(msg, c.wantFragment) {
				t.Errorf("denial = %q, want it to contain %q", msg, c.wantFragment)
			}
		})
	}
}
