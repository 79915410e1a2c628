package models

// Warn representa una advertencia individual
type Warn struct {
	Reason    string `json:"reason" bson:"reason"`
	Moderator string `json:"moderator" bson:"moderator"`
	ID        string `json:"id" bson:"id"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// GuildLedger es el contenido del archivo warns.json de un servidor:
// un mapa de ID de usuario a su lista de advertencias en orden cronológico.
// El índice expuesto a los usuarios empieza en 1.
type GuildLedger map[string][]Warn
