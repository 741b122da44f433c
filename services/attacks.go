// services/attacks.go
package services

import (
	"errors"
	"strings"
	"time"

	"roast-game-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttackService runs the real-money "throw shade" point steals over the
// player points economy. The victim debit, attacker credit and attack
// log row commit together or not at all.
type AttackService struct {
	DB *gorm.DB
}

func NewAttackService(db *gorm.DB) *AttackService {
	return &AttackService{DB: db}
}

// lockPlayer fetches a player row under FOR UPDATE. When createIfMissing
// is set a missing player is created empty (first point award comes
// later in the same transaction); otherwise ErrNotFound is returned.
func lockPlayer(tx *gorm.DB, wallet string, createIfMissing bool) (*models.Player, error) {
	var p models.Player
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wallet_address = ?", wallet).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !createIfMissing {
			return nil, ErrNotFound
		}
		p = models.Player{
			WalletAddress:       wallet,
			LastActiveTimestamp: time.Now(),
		}
		if err := tx.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PerformAttack steals min(500, 5%) of the victim's season points and
// credits them to the attacker, creating the attacker's player row if
// it does not exist yet. cost is the USD the attacker paid, recorded in
// the attack log.
func (s *AttackService) PerformAttack(attacker, victim string, cost float64) (stolen int64, err error) {
	if strings.EqualFold(attacker, victim) {
		return 0, ErrSelfTarget
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Both rows locked in address order, same as Shade; a failed
		// attack rolls back the attacker row it may have created.
		first, second := orderedWallets(attacker, victim)

		players := map[string]*models.Player{}
		for _, wallet := range []string{first, second} {
			p, err := lockPlayer(tx, wallet, wallet == attacker)
			if err != nil {
				return err
			}
			players[wallet] = p
		}
		victimPlayer := players[victim]

		steal := stealAmount(victimPlayer.CurrentSeasonPoints)
		if steal <= 0 {
			return ErrNegligibleValue
		}

		if err := tx.Model(&models.Player{}).
			Where("wallet_address = ?", victim).
			UpdateColumn("current_season_points", gorm.Expr("current_season_points - ?", steal)).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Player{}).
			Where("wallet_address = ?", attacker).
			UpdateColumns(map[string]interface{}{
				"current_season_points": gorm.Expr("current_season_points + ?", steal),
				"last_active_timestamp": time.Now(),
			}).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.Attack{
			AttackerWallet: attacker,
			VictimWallet:   victim,
			PointsStolen:   steal,
			CostAmount:     cost,
		}).Error; err != nil {
			return err
		}

		stolen = steal
		return nil
	})
	if err != nil {
		return 0, err
	}
	return stolen, nil
}
