// services/players.go
package services

import (
	"errors"
	"time"

	"roast-game-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoastCooldown is the anti-spam window: the same roaster may not score
// against the same target twice inside it.
const RoastCooldown = 24 * time.Hour

// PlayerService manages the season points economy rows and the roast log.
type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

func (s *PlayerService) GetPlayer(wallet string) (*models.Player, error) {
	var p models.Player
	err := s.DB.Where("wallet_address = ?", wallet).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AwardRoastPoints credits points and bumps total_roasts, creating the
// player row on first award. The increment is atomic at the store.
func (s *PlayerService) AwardRoastPoints(wallet string, points int) error {
	now := time.Now()
	player := models.Player{
		WalletAddress:       wallet,
		CurrentSeasonPoints: int64(points),
		TotalRoasts:         1,
		LastActiveTimestamp: now,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "wallet_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"current_season_points": gorm.Expr("players.current_season_points + ?", points),
			"total_roasts":          gorm.Expr("players.total_roasts + 1"),
			"last_active_timestamp": now,
		}),
	}).Create(&player).Error
}

// withinRoastCooldown reports whether a roast logged at lastRoast still
// blocks the (roaster, target) pair at now.
func withinRoastCooldown(lastRoast, now time.Time) bool {
	return now.Sub(lastRoast) < RoastCooldown
}

// CheckRoastCooldown reports whether roaster already scored against
// target within the cooldown window. Read-only.
func (s *PlayerService) CheckRoastCooldown(roaster, target string) (bool, error) {
	var last models.RoastLog
	err := s.DB.Where("roaster_wallet = ? AND target_wallet = ?", roaster, target).
		Order("created_at DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return withinRoastCooldown(last.CreatedAt, time.Now()), nil
}

// LogRoastEvent appends to the roast log.
func (s *PlayerService) LogRoastEvent(roaster, target, roastType string, points int) error {
	return s.DB.Create(&models.RoastLog{
		RoasterWallet: roaster,
		TargetWallet:  target,
		RoastType:     roastType,
		PointsAwarded: points,
	}).Error
}

// TopPlayers returns the season points leaderboard.
func (s *PlayerService) TopPlayers(limit int) ([]models.Player, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var players []models.Player
	err := s.DB.Order("current_season_points DESC").Limit(limit).Find(&players).Error
	return players, err
}
