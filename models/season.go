// models/season.go
package models

import "time"

// Season is a time-boxed competitive period. At most one season is
// active at a time; the pot grows with every scored roast and match
// purchase and never shrinks.
type Season struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(128);not null" json:"name"`
	StartTime      time.Time `gorm:"not null" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	IsActive       bool      `gorm:"not null;default:false;index" json:"is_active"`
	CurrentPotSize float64   `gorm:"type:decimal(12,2);not null;default:0" json:"current_pot_size"`

	// Set once the final standings have been exported to object storage.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`

	Timestamps
}
