// models/roast.go
package models

import "time"

// Roast types
const (
	RoastTypeFree    = "free"
	RoastTypePremium = "premium"
	RoastTypeFriend  = "friend"
)

// RoastRecord is a saved roast scorecard. The ID doubles as the public
// share link identifier.
type RoastRecord struct {
	ID            string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	WalletAddress string `gorm:"type:varchar(64);not null;index" json:"wallet_address"`

	Grade          string `gorm:"type:varchar(4);not null" json:"grade"`
	GradeColor     string `gorm:"type:varchar(16);not null" json:"grade_color"`
	Score          int    `gorm:"not null" json:"score"` // lower = worse portfolio
	TopBagholder   string `gorm:"type:varchar(64);not null" json:"top_bagholder"`
	TimeUntilBroke string `gorm:"type:varchar(64);not null" json:"time_until_broke"`
	RoastText      string `gorm:"type:text;not null" json:"roast_text"`
	RoastType      string `gorm:"type:varchar(16);not null;check:roast_type IN ('free','premium','friend')" json:"roast_type"`

	TokenCount   int  `gorm:"not null;default:0" json:"token_count"`
	HasMemeCoins bool `gorm:"not null;default:false" json:"has_meme_coins"`
	HasDeadCoins bool `gorm:"not null;default:false" json:"has_dead_coins"`

	SubmittedToLeaderboard bool      `gorm:"not null;default:false;index" json:"submitted_to_leaderboard"`
	CreatedAt              time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}
