// Package mod provides the moderation commands.
// Each command is in its own file for better organization.
package mod

import (
	"github.com/MiauStudios/WardenGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands as top-level
// slash commands (/ban, /kick, /mute, ...)
func RegisterModCommands(client *discord.ExtendedClient) {
	commands := []*discord.Command{
		createBanCommand(),
		createUnbanCommand(),
		createBanInfoCommand(),
		createKickCommand(),
		createMuteCommand(),
		createUnmuteCommand(),
		createWarnCommand(),
		createUnwarnCommand(),
		createWarnlistCommand(),
		createLockCommand(),
		createUnlockCommand(),
	}

	for _, cmd := range commands {
		client.CommandHandler.RegisterCommand(cmd)
	}
}
