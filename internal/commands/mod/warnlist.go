// Package mod - /warnlist command
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/warnstore"
	"github.com/bwmarrin/discordgo"
)

// createWarnlistCommand creates the /warnlist command. Anyone may consult
// their own warnings, so the builder carries no permission gate; viewing
// another user is checked in the handler.
func createWarnlistCommand() *discord.Command {
	return discord.NewCommand(
		"warnlist",
		"Muestra el historial de advertencias de un usuario",
		"mod",
		warnlistHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (por defecto tú)",
			Required:    false,
		},
	)
}

// canViewWarnlist reports whether the invoker may see the target's warnings.
// Self-lookup is always allowed; anything else needs ManageMessages.
func canViewWarnlist(member *discordgo.Member, invokerID, targetID string) bool {
	if invokerID == targetID {
		return true
	}
	return discord.HasPermission(member, discordgo.PermissionManageMessages)
}

// warnlistHandler handles the /warnlist command
func warnlistHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		target := ctx.GetUserOption("usuario")
		if target == nil {
			target = ctx.User()
		}

		if !canViewWarnlist(ctx.Member(), ctx.User().ID, target.ID) {
			ctx.ReplyEphemeral("❌ Necesitas el permiso de gestionar mensajes para ver advertencias de otros usuarios.")
			return
		}

		warns, err := warnstore.Get().List(ctx.Interaction.GuildID, target.ID)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo leer el historial: %v", err))
			return
		}

		if len(warns) == 0 {
			ctx.Reply(fmt.Sprintf("✅ **%s** no tiene advertencias.", target.Username))
			return
		}

		var sb strings.Builder
		for i, warn := range warns {
			sb.WriteString(fmt.Sprintf(
				"**#%d** — %s\n> Moderador: <@%s> · <t:%d:R>\n",
				i+1, warn.Reason, warn.Moderator, warn.Timestamp,
			))
		}

		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("⚠️ Advertencias de %s (%d)", target.Username, len(warns)),
			Color:       0xFFA500,
			Description: sb.String(),
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: target.AvatarURL("128"),
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
