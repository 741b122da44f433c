// models/attack.go
package models

import "time"

// Attack records a completed "throw shade" point steal. Append-only.
type Attack struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	AttackerWallet string    `gorm:"type:varchar(64);not null;index" json:"attacker_wallet"`
	VictimWallet   string    `gorm:"type:varchar(64);not null;index" json:"victim_wallet"`
	PointsStolen   int64     `gorm:"not null" json:"points_stolen"`
	CostAmount     float64   `gorm:"type:decimal(8,2);not null" json:"cost_amount"` // USD paid for the attack
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
