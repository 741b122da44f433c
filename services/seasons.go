// services/seasons.go
package services

import (
	"errors"
	"log"
	"time"

	"roast-game-service/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// SeasonService owns the season lifecycle and the pot.
type SeasonService struct {
	DB *gorm.DB
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{DB: db}
}

// GetActiveSeason returns the single active season, or ErrNoActiveSeason.
func (s *SeasonService) GetActiveSeason() (*models.Season, error) {
	var season models.Season
	err := s.DB.Where("is_active = ?", true).First(&season).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveSeason
	}
	if err != nil {
		return nil, err
	}
	return &season, nil
}

// IncrementPot grows the season pot by amount as a single atomic update.
func (s *SeasonService) IncrementPot(seasonID string, amount float64) error {
	result := s.DB.Model(&models.Season{}).
		Where("id = ?", seasonID).
		UpdateColumn("current_pot_size", gorm.Expr("current_pot_size + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// StartRolloverScheduler deactivates seasons past their end time once a
// minute. Archiving of ended seasons runs separately in the workers
// package.
func (s *SeasonService) StartRolloverScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var seasons []models.Season
			now := time.Now()
			err := s.DB.Where("is_active = ? AND end_time <= ?", true, now).
				Find(&seasons).Error
			if err != nil {
				log.Printf("[Rollover] DB error: %v", err)
				return
			}

			for _, season := range seasons {
				season.IsActive = false
				if err := s.DB.Save(&season).Error; err != nil {
					log.Printf("[Rollover] Failed to close season %s: %v", season.ID, err)
				} else {
					log.Printf("✅ Season ended: %s (pot %.2f)", season.Name, season.CurrentPotSize)
				}
			}
		}),
	)
}
