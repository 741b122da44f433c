// models/player.go
package models

import "time"

// Player holds the season points economy for the "throw shade" feature.
// Distinct from GameProfile: points here are earned by roasting and can
// be stolen by attacks, while matches are a spendable currency.
type Player struct {
	WalletAddress       string    `gorm:"primaryKey;type:varchar(64)" json:"wallet_address"`
	CurrentSeasonPoints int64     `gorm:"not null;default:0" json:"current_season_points"`
	TotalRoasts         int64     `gorm:"not null;default:0" json:"total_roasts"` // monotonically increasing
	LastActiveTimestamp time.Time `json:"last_active_timestamp"`

	Timestamps
}
