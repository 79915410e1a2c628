// Package commands wires every command package into the client.
package commands

import (
	"github.com/MiauStudios/WardenGo/internal/commands/dev"
	"github.com/MiauStudios/WardenGo/internal/commands/mod"
	"github.com/MiauStudios/WardenGo/internal/commands/utils"
	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/logger"
)

// RegisterAll registers every command package with the client
func RegisterAll(client *discord.ExtendedClient) {
	mod.RegisterModCommands(client)
	utils.RegisterUtilsCommands(client)
	dev.Register(client)

	logger.Info("Comandos cargados en memoria", "Commands")
}
