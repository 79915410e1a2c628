// Package mod - /baninfo command
package mod

import (
	"fmt"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createBanInfoCommand creates the /baninfo command
func createBanInfoCommand() *discord.Command {
	return discord.NewCommand(
		"baninfo",
		"Muestra la información del ban de un usuario",
		"mod",
		banInfoHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "usuario-id",
			Description: "ID del usuario baneado",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers)
}

// banInfoHandler handles the /baninfo command
func banInfoHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		userID := ctx.GetStringOption("usuario-id")
		if userID == "" {
			ctx.ReplyEphemeral("❌ Debes especificar el ID del usuario.")
			return
		}

		ban, err := ctx.Session.GuildBan(ctx.Interaction.GuildID, userID)
		if err != nil {
			// La API devuelve 404 cuando el usuario no está baneado
			if restErr, ok := err.(*discordgo.RESTError); ok && restErr.Response != nil && restErr.Response.StatusCode == 404 {
				ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ El usuario <@%s> no está baneado en este servidor.", userID))
				return
			}
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error consultando el ban: %v", err))
			return
		}

		reason := ban.Reason
		if reason == "" {
			reason = "Sin razón registrada"
		}

		embed := &discordgo.MessageEmbed{
			Title: "🔨 Información de ban",
			Color: 0xFF0000,
			Description: fmt.Sprintf(
				"> **Usuario:** %s (%s)\n> **Razón:** %s",
				ban.User.Username, ban.User.ID, reason,
			),
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: ban.User.AvatarURL("128"),
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "🛡️ - Developed by MiauStudios",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		ctx.ReplyEmbed(embed)
	}()
	return nil
}
