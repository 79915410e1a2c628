// Package mod - /unmute command
package mod

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/modlog"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/MiauStudios/WardenGo/pkg/mutes"
	"github.com/bwmarrin/discordgo"
)

// createUnmuteCommand creates the /unmute command
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Quita el silencio a un usuario",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a des-silenciar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionManageRoles)
}

// memberHasRole reports whether a member carries the given role
func memberHasRole(member *discordgo.Member, roleID string) bool {
	if member == nil {
		return false
	}
	for _, id := range member.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}

// unmuteHandler handles the /unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			reason = "Sin razón especificada"
		}

		guildID := ctx.Interaction.GuildID

		role, err := ResolveMuteRole(ctx.Session, guildID)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al quitar el silencio: %v", err))
			return
		}

		tracked := false
		if w := mutes.Get(); w != nil {
			tracked = w.Active(guildID, user.ID)
		}

		hasRole := false
		if role != nil {
			if member, mErr := ctx.Session.GuildMember(guildID, user.ID); mErr == nil {
				hasRole = memberHasRole(member, role.ID)
			}
		}

		if !tracked && !hasRole {
			ctx.ReplyEphemeral(fmt.Sprintf("ℹ️ **%s** no estaba silenciado.", user.Username))
			return
		}

		if hasRole {
			if err := ctx.Session.GuildMemberRoleRemove(guildID, user.ID, role.ID); err != nil {
				ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al quitar el silencio: %v", err))
				return
			}
		}

		// El unmute manual también descarta el temporizador pendiente
		if w := mutes.Get(); w != nil {
			w.Forget(guildID, user.ID)
		}

		modlog.Record(guildID, models.ActionUnmute, user.ID, ctx.User().ID, reason)

		ctx.Reply(fmt.Sprintf("🔊 **%s** ya puede hablar de nuevo.\n**Razón:** %s", user.Username, reason))
	}()
	return nil
}
