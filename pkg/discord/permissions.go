// Package discord - permission middleware for command dispatch.
package discord

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// evaluatePermissions decides whether a command dispatch may proceed. It
// returns the user-facing denial message, or an empty string to proceed.
// botPermsKnown is false when the bot's channel permissions could not be
// calculated; the bot-side check is then skipped and the API enforces it.
func evaluatePermissions(cmd *Command, i *discordgo.InteractionCreate, devGuildID string, botPerms int64, botPermsKnown bool) string {
	// Comandos de desarrollo: solo en el servidor de desarrollo
	if cmd.IsDev && i.GuildID != devGuildID {
		return "❌ Este comando solo está disponible en el servidor de desarrollo."
	}

	// Permisos del usuario que invoca
	if cmd.UserPermissions != 0 {
		if i.Member == nil {
			return "❌ Este comando solo puede usarse dentro de un servidor."
		}
		if i.Member.Permissions&cmd.UserPermissions != cmd.UserPermissions {
			return "❌ No tienes permisos suficientes para usar este comando."
		}
	}

	// Permisos del bot en el canal
	if cmd.BotPermissions != 0 && botPermsKnown {
		if botPerms&cmd.BotPermissions != cmd.BotPermissions {
			return "❌ No tengo los permisos necesarios para ejecutar esta acción."
		}
	}

	return ""
}

// checkPermissions verifies user and bot permissions before a command runs.
// A non-nil error means dispatch must stop; the user was already answered.
func (c *ExtendedClient) checkPermissions(ctx *CommandContext, cmd *Command) error {
	var botPerms int64
	botPermsKnown := false

	if cmd.BotPermissions != 0 {
		perms, err := ctx.Session.UserChannelPermissions(ctx.Session.State.User.ID, ctx.Interaction.ChannelID)
		if err != nil {
			// no bloquear por un fallo de cálculo; la API rechazará la acción
			logger.Warn(fmt.Sprintf("No se pudieron calcular permisos del bot: %v", err), "Permissions")
		} else {
			botPerms = perms
			botPermsKnown = true
		}
	}

	if msg := evaluatePermissions(cmd, ctx.Interaction, c.GetConfig().DevGuildID, botPerms, botPermsKnown); msg != "" {
		ctx.ReplyEphemeral(msg)
		return fmt.Errorf("permission check failed for %s", cmd.Name)
	}

	return nil
}

// HasPermission reports whether a member holds the given permission bits
func HasPermission(member *discordgo.Member, perms int64) bool {
	return member != nil && member.Permissions&perms == perms
}
