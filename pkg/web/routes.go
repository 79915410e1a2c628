// Package web - API route definitions
package web

import (
	"net/http"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/config"
	"github.com/MiauStudios/WardenGo/pkg/database"
	"github.com/MiauStudios/WardenGo/pkg/discord"
	"github.com/MiauStudios/WardenGo/pkg/mutes"
	"github.com/MiauStudios/WardenGo/pkg/warnstore"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the JSON API under /api
func SetupAPIRoutes(s *Server) {
	api := s.engine.Group("/api")

	api.GET("/status", statusHandler)
	api.GET("/guilds/:id/warncount", warnCountHandler)
}

// statusHandler reports bot, database and watcher status
func statusHandler(c *gin.Context) {
	cfg := config.Get()

	ready := false
	guilds := 0
	uptime := ""
	if client := discord.Get(); client != nil {
		ready = client.IsReady()
		guilds = client.GuildCount()
		uptime = time.Since(client.StartTime).Round(time.Second).String()
	}

	dbStatus, _ := database.Get().GetStatus()

	trackedMutes := 0
	if w := mutes.Get(); w != nil {
		trackedMutes = w.Len()
	}

	c.JSON(http.StatusOK, gin.H{
		"bot":          "WardenBot Go",
		"version":      config.Version,
		"environment":  cfg.Environment,
		"ready":        ready,
		"guilds":       guilds,
		"uptime":       uptime,
		"database":     dbStatus,
		"trackedMutes": trackedMutes,
	})
}

// warnCountHandler reports the total warnings stored for one guild
func warnCountHandler(c *gin.Context) {
	guildID := c.Param("id")
	if guildID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el ID del servidor"})
		return
	}

	store := warnstore.Get()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Almacén de advertencias no inicializado"})
		return
	}

	total, err := store.CountAll(guildID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo leer el ledger"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId":   guildID,
		"warnCount": total,
	})
}
