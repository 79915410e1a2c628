package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestNewClientIntents verifies the gateway intents a moderation bot needs
func TestNewClientIntents(t *testing.T) {
	c, err := NewClient("token-de-prueba")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	wanted := []struct {
		name   string
		intent discordgo.Intent
	}{
		{"Guilds", discordgo.IntentsGuilds},
		{"GuildMessages", discordgo.IntentsGuildMessages},
		{"GuildMembers", discordgo.IntentsGuildMembers},
		{"GuildModeration", discordgo.IntentGuildModeration},
	}

	for _, w := range wanted {
		if c.Session.Identify.Intents&w.intent == 0 {
			t.Errorf("intent %s should be enabled", w.name)
		}
	}
}

// TestNewClientHandlers verifies that command and event handlers are wired
func TestNewClientHandlers(t *testing.T) {
	c, err := NewClient("token-de-prueba")
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if c.CommandHandler == nil {
		t.Error("CommandHandler should be initialized")
	}
	if c.EventHandler == nil {
		t.Error("EventHandler should be initialized")
	}
	if c.Commands == nil {
		t.Error("Commands collection should be initialized")
	}
	if c.IsReady() {
		t.Error("client must not report ready before Start")
	}
}
