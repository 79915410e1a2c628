package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestCommandCreation verifies that commands can be created with the builder pattern
func TestCommandCreation(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ban", "Banea a un usuario", "mod", handler)

	if cmd == nil {
		t.Fatal("NewCommand returned nil")
	}

	if cmd.Name != "ban" {
		t.Errorf("Name = %v, want %v", cmd.Name, "ban")
	}

	if cmd.Description != "Banea a un usuario" {
		t.Errorf("Description = %v, want %v", cmd.Description, "Banea a un usuario")
	}

	if cmd.Category != "mod" {
		t.Errorf("Category = %v, want %v", cmd.Category, "mod")
	}

	if cmd.Run == nil {
		t.Error("Run function is nil")
	}
}

// TestCommandWithOptions verifies the WithOptions builder method
func TestCommandWithOptions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "usuario",
		Description: "Usuario objetivo",
		Required:    true,
	}

	cmd := NewCommand("kick", "Expulsa a un usuario", "mod", handler).
		WithOptions(option)

	if cmd.Options == nil {
		t.Fatal("Options is nil")
	}

	if len(cmd.Options) != 1 {
		t.Fatalf("Options length = %v, want %v", len(cmd.Options), 1)
	}

	if cmd.Options[0].Name != "usuario" {
		t.Errorf("Option name = %v, want %v", cmd.Options[0].Name, "usuario")
	}
}

// TestCommandWithPermissions verifies the permission builder methods
func TestCommandWithPermissions(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("ban", "Banea a un usuario", "mod", handler).
		WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers)

	if cmd.UserPermissions != discordgo.PermissionBanMembers {
		t.Errorf("UserPermissions = %v, want %v", cmd.UserPermissions, discordgo.PermissionBanMembers)
	}

	if cmd.BotPermissions != discordgo.PermissionBanMembers {
		t.Errorf("BotPermissions = %v, want %v", cmd.BotPermissions, discordgo.PermissionBanMembers)
	}
}

// TestCommandAsDev verifies the AsDev builder method
func TestCommandAsDev(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	cmd := NewCommand("eval", "Evalúa código", "dev", handler).AsDev()

	if !cmd.IsDev {
		t.Error("IsDev should be true after calling AsDev()")
	}
}

// TestToApplicationCommand verifies conversion to Discord application command
func TestToApplicationCommand(t *testing.T) {
	handler := func(ctx *CommandContext) error {
		return nil
	}

	option := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "razon",
		Description: "Razón de la acción",
		Required:    false,
	}

	cmd := NewCommand("warn", "Advierte a un usuario", "mod", handler).
		WithOptions(option)

	appCmd := cmd.ToApplicationCommand()

	if appCmd == nil {
		t.Fatal("ToApplicationCommand returned nil")
	}

	if appCmd.Name != "warn" {
		t.Errorf("ApplicationCommand Name = %v, want %v", appCmd.Name, "warn")
	}

	if len(appCmd.Options) != 1 {
		t.Fatalf("ApplicationCommand Options length = %v, want %v", len(appCmd.Options), 1)
	}
}

// TestCommandCollection verifies set/get semantics of the collection
func TestCommandCollection(t *testing.T) {
	cc := NewCommandCollection()

	if cc.Size() != 0 {
		t.Errorf("Size() = %d, want 0", cc.Size())
	}

	cmd := NewCommand("mute", "Silencia a un usuario", "mod", func(ctx *CommandContext) error { return nil })
	cc.Set("mute", cmd)

	got, ok := cc.Get("mute")
	if !ok || got != cmd {
		t.Error("Get() should return the stored command")
	}

	if _, ok := cc.Get("desconocido"); ok {
		t.Error("Get() of unknown command should return false")
	}

	all := cc.All()
	if len(all) != 1 {
		t.Errorf("All() length = %d, want 1", len(all))
	}
}

// TestHasPermission verifies the permission bit helper
func TestHasPermission(t *testing.T) {
	member := &discordgo.Member{
		Permissions: discordgo.PermissionBanMembers | discordgo.PermissionKickMembers,
	}

	if !HasPermission(member, discordgo.PermissionBanMembers) {
		t.Error("HasPermission should be true for granted bits")
	}

	if HasPermission(member, discordgo.PermissionManageChannels) {
		t.Error("HasPermission should be false for missing bits")
	}

	if HasPermission(nil, discordgo.PermissionBanMembers) {
		t.Error("HasPermission should be false for a nil member")
	}
}
