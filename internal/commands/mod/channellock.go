// Package mod - channel lock helpers shared by /lock and /unlock.
package mod

import (
	"github.com/bwmarrin/discordgo"
)

// applySendLock computes the @everyone overwrite bits after locking or
// unlocking a channel. Only the SendMessages bit changes; every other bit of
// the existing overwrite is preserved. remove reports that the overwrite
// became empty and should be deleted instead of written back.
func applySendLock(allow, deny int64, lock bool) (newAllow, newDeny int64, remove bool) {
	if lock {
		allow &^= discordgo.PermissionSendMessages
		deny |= discordgo.PermissionSendMessages
	} else {
		deny &^= discordgo.PermissionSendMessages
	}
	return allow, deny, allow == 0 && deny == 0
}

// setSendLock rewrites the @everyone overwrite of a channel, touching only
// the SendMessages bit. @everyone shares its ID with the guild.
func setSendLock(s *discordgo.Session, channelID, guildID string, lock bool) error {
	ch, err := s.Channel(channelID)
	if err != nil {
		return err
	}

	var allow, deny int64
	found := false
	for _, ow := range ch.PermissionOverwrites {
		if ow.ID == guildID && ow.Type == discordgo.PermissionOverwriteTypeRole {
			allow, deny = ow.Allow, ow.Deny
			found = true
			break
		}
	}

	newAllow, newDeny, remove := applySendLock(allow, deny, lock)
	if remove {
		if !found {
			return nil
		}
		return s.ChannelPermissionDelete(channelID, guildID)
	}
	return s.ChannelPermissionSet(channelID, guildID, discordgo.PermissionOverwriteTypeRole, newAllow, newDeny)
}
