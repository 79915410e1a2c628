// Package mod - /unban command
package mod

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/modlog"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createUnbanCommand creates the /unban command
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Desbanea a un usuario por su ID",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "usuario-id",
			Description: "ID del usuario a desbanear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del desbaneo",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// unbanHandler handles the /unban command
func unbanHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		userID := ctx.GetStringOption("usuario-id")
		if userID == "" {
			ctx.ReplyEphemeral("❌ Debes especificar el ID del usuario.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			reason = "Sin razón especificada"
		}

		err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, userID)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al desbanear: %v", err))
			return
		}

		modlog.Record(ctx.Interaction.GuildID, models.ActionUnban, userID, ctx.User().ID, reason)

		ctx.Reply(fmt.Sprintf("🔓 El usuario <@%s> ha sido desbaneado.\n**Razón:** %s", userID, reason))
	}()
	return nil
}
