// services/actions.go
package services

import (
	"errors"
	"strings"
	"time"

	"roast-game-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActionService applies the stoke/shade/cope game actions. Every action
// runs in a single transaction with the touched profile rows locked
// FOR UPDATE, so concurrent actions against the same profile serialize
// instead of losing updates.
type ActionService struct {
	DB *gorm.DB
}

func NewActionService(db *gorm.DB) *ActionService {
	return &ActionService{DB: db}
}

// ActionResult is returned for every successful (or shield-blocked)
// action with a user-facing message.
type ActionResult struct {
	Message    string `json:"message"`
	Blocked    bool   `json:"blocked,omitempty"`
	NewScore   *int   `json:"new_score,omitempty"`
	NewBalance *int   `json:"new_balance,omitempty"`
}

// lockProfile fetches a profile row under FOR UPDATE. When createIfMissing
// is set a missing profile is created with starting defaults (lazy
// profile creation); otherwise ErrNotFound is returned.
func lockProfile(tx *gorm.DB, wallet string, createIfMissing bool) (*models.GameProfile, error) {
	var p models.GameProfile
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("wallet_address = ?", wallet).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !createIfMissing {
			return nil, ErrNotFound
		}
		p = models.GameProfile{
			WalletAddress:  wallet,
			MatchesBalance: StartingMatches,
			League:         models.LeagueShrimp,
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

func logAction(tx *gorm.DB, actor string, target *string, actionType string, cost int) error {
	return tx.Create(&models.GameAction{
		ActorWallet:  actor,
		TargetWallet: target,
		ActionType:   actionType,
		Cost:         cost,
	}).Error
}

// Stoke burns one match for +10 own score.
func (s *ActionService) Stoke(actor string) (*ActionResult, error) {
	var res *ActionResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		prof, err := lockProfile(tx, actor, true)
		if err != nil {
			return err
		}
		if err := applyStoke(prof); err != nil {
			return err
		}
		if err := tx.Save(prof).Error; err != nil {
			return err
		}
		if err := logAction(tx, actor, nil, "stoke", StokeCost); err != nil {
			return err
		}
		res = &ActionResult{
			Message:    "Stoked! +10 Score",
			NewScore:   &prof.CurrentScore,
			NewBalance: &prof.MatchesBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Shade burns one match to knock 10 points off the target's score. A
// shielded target blocks the damage but the match is spent either way;
// the blocked outcome is reported in the result, not as an error.
func (s *ActionService) Shade(actor, target string) (*ActionResult, error) {
	if strings.EqualFold(actor, target) {
		return nil, ErrSelfTarget
	}

	var res *ActionResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		first, second := orderedWallets(actor, target)

		profiles := map[string]*models.GameProfile{}
		for _, wallet := range []string{first, second} {
			prof, err := lockProfile(tx, wallet, wallet == actor)
			if err != nil {
				return err
			}
			profiles[wallet] = prof
		}
		attacker, victim := profiles[actor], profiles[target]

		blocked, err := applyShade(attacker, victim, time.Now())
		if err != nil {
			return err
		}
		if err := tx.Save(attacker).Error; err != nil {
			return err
		}
		if !blocked {
			if err := tx.Save(victim).Error; err != nil {
				return err
			}
		}
		if err := logAction(tx, actor, &target, "shade", ShadeCost); err != nil {
			return err
		}

		msg := "Shade Thrown! Target lost 10 points."
		if blocked {
			msg = "Attack Blocked! Target has a shield."
		}
		res = &ActionResult{
			Message:    msg,
			Blocked:    blocked,
			NewBalance: &attacker.MatchesBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Cope burns five matches for a one hour shield.
func (s *ActionService) Cope(actor string) (*ActionResult, error) {
	var res *ActionResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		prof, err := lockProfile(tx, actor, true)
		if err != nil {
			return err
		}
		if err := applyCope(prof, time.Now()); err != nil {
			return err
		}
		if err := tx.Save(prof).Error; err != nil {
			return err
		}
		if err := logAction(tx, actor, nil, "cope", CopeCost); err != nil {
			return err
		}
		res = &ActionResult{
			Message:    "Cope Shield Activated! Safe for 1 hour.",
			NewBalance: &prof.MatchesBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
