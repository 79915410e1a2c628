// Package mod - mute role helpers shared by the mute commands and the
// expiry watcher callback.
package mod

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MiauStudios/WardenGo/pkg/config"
	"github.com/bwmarrin/discordgo"
)

// ResolveMuteRole finds the configured mute role in a guild, or nil if absent
func ResolveMuteRole(s *discordgo.Session, guildID string) (*discordgo.Role, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("obteniendo roles del servidor %s: %w", guildID, err)
	}

	name := config.Get().MuteRoleName
	for _, role := range roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

// EnsureMuteRole returns the configured mute role, creating it when missing
func EnsureMuteRole(s *discordgo.Session, guildID string) (*discordgo.Role, error) {
	role, err := ResolveMuteRole(s, guildID)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	name := config.Get().MuteRoleName
	perms := int64(0)
	role, err = s.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        name,
		Permissions: &perms,
	})
	if err != nil {
		return nil, fmt.Errorf("creando el rol %q: %w", name, err)
	}
	return role, nil
}

// UnmuteUser removes the mute role from a member. Used by the /unmute
// command and by the expiry watcher.
func UnmuteUser(s *discordgo.Session, guildID, userID string) error {
	role, err := ResolveMuteRole(s, guildID)
	if err != nil {
		return err
	}
	if role == nil {
		// Sin rol no hay nada que quitar
		return nil
	}
	return s.GuildMemberRoleRemove(guildID, userID, role.ID)
}

// ParseDuration interprets a free-text duration like "30m", "2h", "1d" or
// "1h30m". Days are accepted as a convenience on top of time.ParseDuration.
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return 0, fmt.Errorf("duración vacía")
	}

	if strings.HasSuffix(raw, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(raw, "d"), 64)
		if err != nil {
			return 0, fmt.Errorf("duración inválida: %q", raw)
		}
		return time.Duration(days * 24 * float64(time.Hour)), nil
	}

	dur, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("duración inválida: %q", raw)
	}
	return dur, nil
}

// FormatDuration renders a duration compactly for user-facing messages
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= 24*time.Hour {
		days := d / (24 * time.Hour)
		rest := d % (24 * time.Hour)
		if rest == 0 {
			return fmt.Sprintf("%dd", days)
		}
		return fmt.Sprintf("%dd%s", days, FormatDuration(rest))
	}
	if d >= time.Hour {
		hours := d / time.Hour
		rest := d % time.Hour
		if rest == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%s", hours, FormatDuration(rest))
	}
	if d >= time.Minute {
		mins := d / time.Minute
		rest := d % time.Minute
		if rest == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm%s", mins, FormatDuration(rest))
	}
	return fmt.Sprintf("%ds", d/time.Second)
}
