// Package main is the entry point for the WardenBot Go application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MiauStudios/WardenGo/internal/commands"
	"github.com/MiauStudios/WardenGo/internal/commands/mod"
	"github.com/MiauStudios/WardenGo/internal/events"
	"github.com/MiauStudios/WardenGo/pkg/config"
	"github.com/MiauStudios/WardenGo/pkg/database"
	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/errors"
	"github.com/MiauStudios/WardenGo/pkg/logger"
	"github.com/MiauStudios/WardenGo/pkg/mqtt"
	"github.com/MiauStudios/WardenGo/pkg/mutes"
	"github.com/MiauStudios/WardenGo/pkg/warnstore"
	"github.com/MiauStudios/WardenGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando WardenBot Go...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize the warning ledger store
	warnstore.Init(cfg.DataDir)
	logger.Info(fmt.Sprintf("Ledger de advertencias en: %s", cfg.DataDir), "Main")

	// Initialize database (optional case archive)
	if cfg.HasDatabase() {
		db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
		if err != nil {
			logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
			// Continue without database - it will attempt to reconnect
		}
		defer func() {
			if db != nil {
				err := db.Disconnect()
				if err != nil {
					return
				}
			}
		}()

		if db != nil {
			database.InitGlobalDataManagers(db)
		}
	} else {
		logger.Info("Sin base de datos configurada, archivo de casos desactivado", "Main")
	}

	// Initialize MQTT
	mqttClientID := "wardenbot"
	if !cfg.IsProd() {
		mqttClientID = "wardenbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands and events
	commands.RegisterAll(discordClient)
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	// Start the mute-expiry watcher once Discord is connected
	watcher := mutes.Init(cfg.MuteSweepInterval, func(guildID, userID string) error {
		return mod.UnmuteUser(discordClient.Session, guildID, userID)
	})
	watcher.Start()
	defer watcher.Stop()

	logger.Success("WardenBot Go iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando WardenBot Go...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
