// services/profiles.go
package services

import (
	"errors"
	"time"

	"roast-game-service/models"

	"gorm.io/gorm"
)

// ProfileService manages GameProfile rows, the per-league jackpot reads
// and the daily match claim.
type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// GetOrCreateProfile returns the profile for a wallet, creating it with
// starting defaults on first sight (idempotent).
func (s *ProfileService) GetOrCreateProfile(wallet string) (*models.GameProfile, error) {
	var prof models.GameProfile
	err := s.DB.Where("wallet_address = ?", wallet).First(&prof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prof = models.GameProfile{
			WalletAddress:  wallet,
			MatchesBalance: StartingMatches,
			League:         models.LeagueShrimp,
		}
		if err := s.DB.Create(&prof).Error; err != nil {
			return nil, err
		}
		return &prof, nil
	}
	if err != nil {
		return nil, err
	}
	return &prof, nil
}

// GetJackpot returns the jackpot amount for a league; a league without
// a jackpot row yet reads as 0.
func (s *ProfileService) GetJackpot(league string) (float64, error) {
	var j models.Jackpot
	err := s.DB.Where("league = ?", league).First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return j.Amount, nil
}

// GetGameLeaderboard returns the league's profiles by score descending.
// Higher score = King of the Dumpster.
func (s *ProfileService) GetGameLeaderboard(league string, limit int) ([]models.GameProfile, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var profiles []models.GameProfile
	err := s.DB.Where("league = ?", league).
		Order("current_score DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

// ClaimDailyMatches grants the daily match allowance, at most once per
// 24 hours per wallet. Runs under a row lock so double-submits cannot
// claim twice.
func (s *ProfileService) ClaimDailyMatches(wallet string) (*ActionResult, error) {
	var res *ActionResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		prof, err := lockProfile(tx, wallet, true)
		if err != nil {
			return err
		}
		now := time.Now()
		if !canClaimDaily(prof, now) {
			return ErrCooldown
		}
		prof.MatchesBalance += DailyClaimMatches
		prof.LastDailyClaim = &now
		if err := tx.Save(prof).Error; err != nil {
			return err
		}
		if err := logAction(tx, wallet, nil, "claim", 0); err != nil {
			return err
		}
		res = &ActionResult{
			Message:    "Daily matches claimed!",
			NewBalance: &prof.MatchesBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
