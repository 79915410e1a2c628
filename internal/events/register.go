// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, moderation, etc.)
package events

import (
	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (bot startup)
	RegisterReadyEvent(client)

	// Guild events (server join/leave)
	RegisterGuildEvents(client)

	// Member events (join/leave, mute evasion)
	RegisterMemberEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
