// models/match_purchase.go
package models

import "time"

// MatchPurchase mirrors a settled purchase from the payment service.
// The external purchase ID is the primary key, so re-processing the
// same purchase is a no-op (insert conflicts are skipped).
type MatchPurchase struct {
	ID             string    `gorm:"primaryKey;type:varchar(64)" json:"id"` // payment service purchase ID
	WalletAddress  string    `gorm:"type:varchar(64);not null;index" json:"wallet_address"`
	MatchesGranted int       `gorm:"not null" json:"matches_granted"`
	AmountUSD      float64   `gorm:"type:decimal(8,2);not null" json:"amount_usd"`
	PurchasedAt    time.Time `gorm:"not null" json:"purchased_at"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
