// models/jackpot.go
package models

import "time"

// Jackpot is the per-league prize pool, funded by match purchases.
type Jackpot struct {
	League    string    `gorm:"primaryKey;type:varchar(16)" json:"league"`
	Amount    float64   `gorm:"type:decimal(12,2);not null;default:0" json:"amount"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
