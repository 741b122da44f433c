// models/game_action.go
package models

import "time"

// GameAction is the append-only audit log of stoke/shade/cope/claim
// actions. Rows are never updated or deleted after insert.
type GameAction struct {
	ID           string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ActorWallet  string    `gorm:"type:varchar(64);not null;index" json:"actor_wallet"`
	TargetWallet *string   `gorm:"type:varchar(64);index" json:"target_wallet,omitempty"` // nil for self-actions
	ActionType   string    `gorm:"type:varchar(16);not null;check:action_type IN ('stoke','shade','cope','claim')" json:"action_type"`
	Cost         int       `gorm:"not null;default:0" json:"cost"` // in matches
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}
