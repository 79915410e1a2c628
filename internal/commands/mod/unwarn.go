// Package mod - /unwarn command
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

// createUnwarnCommand creates the /unwarn command
func createUnwarnCommand() *discord.Command {
	return discord.NewCommand(
		"unwarn",
		"Elimina una advertencia del historial de un usuario",
		"mod",
		unwarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que quitar la advertencia",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "indice",
			Description:  "Número de la advertencia a eliminar (ver /warnlist)",
			Required:     true,
			Autocomplete: true,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithAutoComplete(unwarnAutoComplete)
}

// unwarnAutoComplete suggests the valid warning indexes for the chosen user
func unwarnAutoComplete(ctx *discord.CommandContext) {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		ctx.SendAutoCompleteChoices(nil)
		return
	}

	warns, err := warnstore.Get().List(ctx.Interaction.GuildID, user.ID)
	if err != nil || len(warns) == 0 {
		ctx.SendAutoCompleteChoices(nil)
		return
	}

	// Discord acepta 25 opciones como máximo
	limit := len(warns)
	if limit > 25 {
		limit = 25
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, limit)
	for i := 0; i < limit; i++ {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("#%d — %s", i+1, truncate(warns[i].Reason, 80)),
			Value: i + 1,
		})
	}
	ctx.SendAutoCompleteChoices(choices)
}

// truncate shortens a string for display in autocomplete choices.
// Cuts on rune boundaries so multi-byte text stays valid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// unwarnHandler handles the /unwarn command
func unwarnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		index := int(ctx.GetIntOption("indice"))

		removed, err := warnstore.Get().RemoveAt(ctx.Interaction.GuildID, user.ID, index)
		if err != nil {
			if err == warnstore.ErrIndexOutOfRange {
				ctx.ReplyEphemeral(fmt.Sprintf("❌ **%s** no tiene una advertencia #%d. Revisa `/warnlist`.", user.Username, index))
				return
			}
			ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo eliminar la advertencia: %v", err))
			return
		}

		modlog.Record(ctx.Interaction.GuildID, models.ActionUnwarn, user.ID, ctx.User().ID, removed.Reason)

		ctx.Reply(fmt.Sprintf(
			"✅ Advertencia #%d de **%s** eliminada.\n**Razón original:** %s",
			index, user.Username, removed.Reason,
		))
	}()
	return nil
}
