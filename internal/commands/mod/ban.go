// Package mod - /ban command
package mod

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/modlog"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createBanCommand creates the /ban command
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del servidor",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dias",
			Description: "Días de mensajes a eliminar (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)
}

// banHandler handles the /ban command
func banHandler(ctx *discord.CommandContext) error {
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

		days := int(ctx.GetIntOption("dias"))

		// Perform the ban
		err := ctx.Session.GuildBanCreateWithReason(
			ctx.Interaction.GuildID,
			user.ID,
			reason,
			days,
		)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al banear: %v", err))
			return
		}

		modlog.Record(ctx.Interaction.GuildID, models.ActionBan, user.ID, ctx.User().ID, reason)

		ctx.Reply(fmt.Sprintf("🔨 **%s** ha sido baneado.\n**Razón:** %s", user.Username, reason))
	}()
	return nil
}
