// Package mod - /warn command
package mod

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/modlog"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/MiauStudios/WardenGo/pkg/warnstore"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /warn command
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario y lo registra en su historial",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages)
}

// warnDMMessage builds the notice sent to the warned user
func warnDMMessage(guildName, reason string, count int) string {
	return fmt.Sprintf(
		"⚠️ Has recibido una advertencia en **%s** (advertencia #%d).\n**Razón:** %s",
		guildName, count, reason,
	)
}

// warnHandler handles the /warn command
func warnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar una razón.")
			return
		}

		warn, index, err := warnstore.Get().Add(ctx.Interaction.GuildID, user.ID, reason, ctx.User().ID)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo guardar la advertencia: %v", err))
			return
		}

		modlog.Record(ctx.Interaction.GuildID, models.ActionWarn, user.ID, ctx.User().ID, reason)

		// Avisar por DM; la advertencia cuenta aunque el DM falle (DMs cerrados)
		guildName := ctx.Interaction.GuildID
		if g := ctx.Guild(); g != nil {
			guildName = g.Name
		}
		if dm, dmErr := ctx.Session.UserChannelCreate(user.ID); dmErr == nil {
			_, _ = ctx.Session.ChannelMessageSend(dm.ID, warnDMMessage(guildName, reason, index))
		}

		ctx.Reply(fmt.Sprintf(
			"⚠️ **%s** ha sido advertido (advertencia #%d).\n**Razón:** %s\n**ID:** `%s`",
			user.Username, index, reason, warn.ID,
		))
	}()
	return nil
}
