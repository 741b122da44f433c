package workers

import (
	"context"
	"log"
	"time"

	"roast-game-service/models"

	"gorm.io/gorm"
)

// SweepShields periodically nulls out expired shield timestamps. Shade
// correctness never depends on this — applyShade checks the timestamp —
// it just keeps the rows and the state payloads tidy.
func SweepShields(ctx context.Context, db *gorm.DB, interval time.Duration) {
	log.Println("Starting shield sweeper...")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Shield sweeper stopped.")
			return
		case <-ticker.C:
			result := db.Model(&models.GameProfile{}).
				Where("shield_active_until IS NOT NULL AND shield_active_until < ?", time.Now()).
				UpdateColumn("shield_active_until", nil)
			if result.Error != nil {
				log.Printf("[ShieldSweeper] DB error: %v", result.Error)
				continue
			}
			if result.RowsAffected > 0 {
				log.Printf("🧹 Cleared %d expired shields", result.RowsAffected)
			}
		}
	}
}
