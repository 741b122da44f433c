// models/profile.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Leagues partition profiles into jackpot/leaderboard pools by wallet size.
const (
	LeagueShrimp  = "shrimp"
	LeagueDolphin = "dolphin"
	LeagueWhale   = "whale"
)

// GameProfile is the per-wallet state for the stoke/shade/cope game.
// Created lazily on the first game-state request, never deleted.
type GameProfile struct {
	WalletAddress  string `gorm:"primaryKey;type:varchar(64)" json:"wallet_address"` // lowercase hex
	MatchesBalance int    `gorm:"not null;default:5" json:"matches_balance"`
	League         string `gorm:"type:varchar(16);not null;default:'shrimp';index;check:league IN ('shrimp','dolphin','whale')" json:"league"`
	CurrentScore   int    `gorm:"not null;default:0" json:"current_score"` // floored at 0, never negative

	// Non-nil and in the future means the profile is immune to shade.
	ShieldActiveUntil *time.Time `json:"shield_active_until,omitempty"`

	LastDailyClaim *time.Time `json:"last_daily_claim,omitempty"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
