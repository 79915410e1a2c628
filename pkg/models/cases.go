package models

// CaseAction identifies the kind of moderation action a case records
type CaseAction string

const (
	ActionBan    CaseAction = "ban"
	ActionUnban  CaseAction = "unban"
	ActionKick   CaseAction = "kick"
	ActionMute   CaseAction = "mute"
	ActionUnmute CaseAction = "unmute"
	ActionWarn   CaseAction = "warn"
	ActionUnwarn CaseAction = "unwarn"
	ActionLock   CaseAction = "lock"
	ActionUnlock CaseAction = "unlock"
)

// CaseDocument representa un caso de moderación archivado en la colección "cases"
type CaseDocument struct {
	CaseID    string     `bson:"caseId" json:"caseId"`
	GuildID   string     `bson:"guildId" json:"guildId"`
	Action    CaseAction `bson:"action" json:"action"`
	TargetID  string     `bson:"targetId" json:"targetId"`
	Moderator string     `bson:"moderator" json:"moderator"`
	Reason    string     `bson:"reason" json:"reason"`
	Timestamp int64      `bson:"timestamp" json:"timestamp"`
}
