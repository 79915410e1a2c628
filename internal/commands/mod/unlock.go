// Package mod - /unlock command
package mod

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/modlog"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createUnlockCommand creates the /unlock command
func createUnlockCommand() *discord.Command {
	return discord.NewCommand(
		"unlock",
		"Desbloquea el canal para que @everyone pueda escribir",
		"mod",
		unlockHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal a desbloquear (por defecto el actual)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del desbloqueo",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

// unlockHandler handles the /unlock command
func unlockHandler(ctx *discord.CommandContext) error {
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

		err := setSendLock(ctx.Session, channelID, ctx.Interaction.GuildID, false)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al desbloquear el canal: %v", err))
			return
		}

		modlog.Record(ctx.Interaction.GuildID, models.ActionUnlock, channelID, ctx.User().ID, reason)

		ctx.Reply(fmt.Sprintf("🔓 <#%s> ha sido desbloqueado.\n**Razón:** %s", channelID, reason))
	}()
	return nil
}
