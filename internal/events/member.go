// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/MiauStudios/WardenGo/internal/commands/mod"
	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/logger"
	"github.com/MiauStudios/WardenGo/pkg/mutes"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberAdd is called when a new member joins the server. If the user
// still has an active mute, the role is re-applied so leaving and rejoining
// does not evade the sanction.
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Debug(fmt.Sprintf("👋 Nuevo miembro: %s en servidor %s", m.User.Username, m.GuildID), "Member")

	watcher := mutes.Get()
	if watcher == nil || !watcher.Active(m.GuildID, m.User.ID) {
		return
	}

	role, err := mod.ResolveMuteRole(s, m.GuildID)
	if err != nil || role == nil {
		logger.Warn(fmt.Sprintf("No se pudo resolver el rol de silencio en %s: %v", m.GuildID, err), "Member")
		return
	}

	if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, role.ID); err != nil {
		logger.Error(fmt.Sprintf("No se pudo re-aplicar el silencio a %s: %v", m.User.ID, err), "Member")
		return
	}

	logger.Info(fmt.Sprintf("🔇 Silencio re-aplicado a %s en %s (intento de evasión)", m.User.ID, m.GuildID), "Member")
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Debug(fmt.Sprintf("👋 %s salió del servidor %s", m.User.Username, m.GuildID), "Member")
}
