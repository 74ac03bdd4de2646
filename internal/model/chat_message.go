package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is an append-only log of user/assistant turns.
// Scope: "personal" | "equipo" | "vendedor". TargetUserID is set only for the
// "vendedor" scope of a manager chat; the (user, scope, target) tuple isolates
// each conversation context.
type ChatMessage struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role         string     `gorm:"type:varchar(10);not null"` // user | assistant
	Content      string     `gorm:"not null"`
	Scope        string     `gorm:"type:varchar(10);not null;default:'personal'"`
	TargetUserID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"index"`
}
