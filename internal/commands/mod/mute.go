// Package mod - /mute command
package mod

import (
	"fmt"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/modlog"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/MiauStudios/WardenGo/pkg/mutes"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mute command
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Silencia temporalmente a un usuario",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a silenciar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración del silencio (ej: 30m, 2h, 1d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del silencio",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionManageRoles)
}

// muteHandler handles the /mute command
func muteHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		duration, err := ParseDuration(ctx.GetStringOption("duracion"))
		if err != nil {
			ctx.ReplyEphemeral("❌ Duración inválida. Usa un formato como `30m`, `2h` o `1d`.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			reason = "Sin razón especificada"
		}

		role, err := EnsureMuteRole(ctx.Session, ctx.Interaction.GuildID)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo preparar el rol de silencio: %v", err))
			return
		}

		if err := ctx.Session.GuildMemberRoleAdd(ctx.Interaction.GuildID, user.ID, role.ID); err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al silenciar: %v", err))
			return
		}

		expiry := time.Now().Add(duration)
		mutes.Get().Track(ctx.Interaction.GuildID, user.ID, expiry)

		modlog.Record(ctx.Interaction.GuildID, models.ActionMute, user.ID, ctx.User().ID, reason)

		ctx.Reply(fmt.Sprintf(
			"🔇 **%s** ha sido silenciado por **%s**.\n**Razón:** %s\n**Expira:** <t:%d:R>",
			user.Username, FormatDuration(duration), reason, expiry.Unix(),
		))
	}()
	return nil
}
