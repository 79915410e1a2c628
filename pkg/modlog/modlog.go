// Package modlog records moderation cases. Every successful moderation
// command produces a case: archived in MongoDB when a database is configured
// and published over MQTT when a broker is reachable. Both sinks are
// best-effort; command outcomes never depend on them.
package modlog

import (
	"fmt"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/database"
	"github.com/MiauStudios/WardenGo/pkg/logger"
	"github.com/MiauStudios/WardenGo/pkg/models"
	"github.com/MiauStudios/WardenGo/pkg/mqtt"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Record archives a moderation case and publishes it as an event
func Record(guildID string, action models.CaseAction, targetID, moderatorID, reason string) {
	doc := models.CaseDocument{
		CaseID:    uuid.New().String(),
		GuildID:   guildID,
		Action:    action,
		TargetID:  targetID,
		Moderator: moderatorID,
		Reason:    reason,
		Timestamp: time.Now().Unix(),
	}

	// Archivo en Mongo (opcional)
	if dm := database.GlobalCaseDM; dm != nil {
		query := bson.M{"caseId": doc.CaseID}
		if _, err := dm.Set(query, doc); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo archivar el caso %s: %v", doc.CaseID, err), "ModLog")
		}
	}

	// Evento MQTT (opcional)
	if pub := mqtt.Get(); pub != nil && pub.IsConnected() {
		topic := fmt.Sprintf("warden/modlog/%s", guildID)
		if err := pub.Publish(topic, doc); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo publicar el caso %s: %v", doc.CaseID, err), "ModLog")
		}
	}

	logger.Info(fmt.Sprintf("Caso registrado: %s %s -> %s (mod: %s)", doc.CaseID[:8], action, targetID, moderatorID), "ModLog")
}
