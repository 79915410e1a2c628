package utils

import (
	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de WardenBot Go**\n\n" +
				"**Comandos disponibles:**\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils stats` - Estadísticas del bot\n" +
				"• `/ban <usuario> [razón] [días]` - Banea a un usuario\n" +
				"• `/unban <usuario-id> [razón]` - Desbanea a un usuario\n" +
				"• `/baninfo <usuario-id>` - Información de un ban\n" +
				"• `/kick <usuario> [razón]` - Expulsa a un usuario\n" +
				"• `/mute <usuario> <duración> [razón]` - Silencia temporalmente\n" +
				"• `/unmute <usuario> [razón]` - Quita el silencio\n" +
				"• `/warn <usuario> <razón>` - Advierte a un usuario\n" +
				"• `/unwarn <usuario> <índice>` - Elimina una advertencia\n" +
				"• `/warnlist <usuario>` - Lista las advertencias\n" +
				"• `/lock [canal] [razón]` - Bloquea un canal\n" +
				"• `/unlock [canal] [razón]` - Desbloquea un canal",
		)
	}()
	return nil
}
