// services/roasts.go
package services

import (
	"errors"
	"log"
	"strings"

	"roast-game-service/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PotContribution is the fixed USD amount a scored roast adds to the
// active season's pot.
const PotContribution = 0.50

// RoastService stores roast scorecards and orchestrates the game-side
// effects of a scored submission.
type RoastService struct {
	DB      *gorm.DB
	Players *PlayerService
	Seasons *SeasonService
}

func NewRoastService(db *gorm.DB, players *PlayerService, seasons *SeasonService) *RoastService {
	return &RoastService{DB: db, Players: players, Seasons: seasons}
}

// SubmitOutcome reports what happened to a roast submission. Scored is
// false when the roast was saved but the points economy could not be
// updated (no active season, store failure); the roast itself is never
// lost to a scoring failure.
type SubmitOutcome struct {
	Record    *models.RoastRecord `json:"record"`
	Scorecard *Scorecard          `json:"scorecard,omitempty"`
	Scored    bool                `json:"scored"`
}

// SaveRoast persists a roast record, assigning an ID when the caller
// did not bring one.
func (s *RoastService) SaveRoast(record *models.RoastRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.WalletAddress = strings.ToLower(record.WalletAddress)
	return s.DB.Create(record).Error
}

func (s *RoastService) GetRoastByID(id string) (*models.RoastRecord, error) {
	var r models.RoastRecord
	err := s.DB.Where("id = ?", id).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetLatestRoastByAddress returns the most recent roast of a wallet.
func (s *RoastService) GetLatestRoastByAddress(address string) (*models.RoastRecord, error) {
	var r models.RoastRecord
	err := s.DB.Where("wallet_address = ?", strings.ToLower(address)).
		Order("created_at DESC").
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRoastLeaderboard returns submitted roasts worst-first (lower score
// = worse portfolio).
func (s *RoastService) GetRoastLeaderboard(limit int) ([]models.RoastRecord, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var records []models.RoastRecord
	err := s.DB.Where("submitted_to_leaderboard = ?", true).
		Order("score ASC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// GetRecentRoasts returns the latest submitted roasts.
func (s *RoastService) GetRecentRoasts(limit int) ([]models.RoastRecord, error) {
	if limit < 1 || limit > 100 {
		limit = 5
	}
	var records []models.RoastRecord
	err := s.DB.Where("submitted_to_leaderboard = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// SubmitToLeaderboard flags a saved roast as public.
func (s *RoastService) SubmitToLeaderboard(id string) error {
	result := s.DB.Model(&models.RoastRecord{}).
		Where("id = ?", id).
		Update("submitted_to_leaderboard", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SubmitScoredRoast is the full submission flow: the anti-spam guard
// runs first and rejects with ErrCooldown before any side effect; the
// roast record is then saved; scoring, the roast log and the pot are
// best-effort afterwards — their failure never fails the roast itself.
func (s *RoastService) SubmitScoredRoast(roaster, target string, record *models.RoastRecord, submit bool) (*SubmitOutcome, error) {
	onCooldown, err := s.Players.CheckRoastCooldown(roaster, target)
	if err != nil {
		return nil, err
	}
	if onCooldown {
		return nil, ErrCooldown
	}

	record.SubmittedToLeaderboard = submit
	if err := s.SaveRoast(record); err != nil {
		return nil, err
	}

	outcome := &SubmitOutcome{Record: record}

	season, err := s.Seasons.GetActiveSeason()
	if err != nil {
		log.Printf("⚠️  Roast %s saved unscored: %v", record.ID, err)
		return outcome, nil
	}

	card := CalculatePoints(season.StartTime, record.RoastType == models.RoastTypeFriend)
	if err := s.Players.AwardRoastPoints(roaster, card.Points); err != nil {
		log.Printf("⚠️  Failed to award points for roast %s: %v", record.ID, err)
		return outcome, nil
	}
	if err := s.Players.LogRoastEvent(roaster, target, record.RoastType, card.Points); err != nil {
		log.Printf("⚠️  Failed to log roast %s: %v", record.ID, err)
	}
	if err := s.Seasons.IncrementPot(season.ID, PotContribution); err != nil {
		log.Printf("⚠️  Failed to fund pot for roast %s: %v", record.ID, err)
	}

	outcome.Scorecard = &card
	outcome.Scored = true
	return outcome, nil
}
