// models/roast_log.go
package models

import "time"

// RoastLog records every scored roast. Append-only; the anti-spam
// cooldown query scans the (roaster, target, created_at) index.
type RoastLog struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	RoasterWallet string    `gorm:"type:varchar(64);not null;index:idx_roast_pair" json:"roaster_wallet"`
	TargetWallet  string    `gorm:"type:varchar(64);not null;index:idx_roast_pair" json:"target_wallet"`
	RoastType     string    `gorm:"type:varchar(16);not null" json:"roast_type"`
	PointsAwarded int       `gorm:"not null;default:0" json:"points_awarded"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_roast_pair"`
}
