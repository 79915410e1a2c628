// Package mod - /lock command
package mod

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/modlog"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createLockCommand creates the /lock command
func createLockCommand() *discord.Command {
	return discord.NewCommand(
		"lock",
		"Bloquea el canal para que @everyone no pueda escribir",
		"mod",
		lockHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal a bloquear (por defecto el actual)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del bloqueo",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// lockHandler handles the /lock command
func lockHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		channelID := ctx.Interaction.ChannelID
		if ch := ctx.GetChannelOption("canal"); ch != nil {
			channelID = ch.ID
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			reason = "Sin razón especificada"
		}

		err := setSendLock(ctx.Session, channelID, ctx.Interaction.GuildID, true)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al bloquear el canal: %v", err))
			return
		}

		modlog.Record(ctx.Interaction.GuildID, models.ActionLock, channelID, ctx.User().ID, reason)

		ctx.Reply(fmt.Sprintf("🔒 <#%s> ha sido bloqueado.\n**Razón:** %s", channelID, reason))
	}()
	return nil
}
