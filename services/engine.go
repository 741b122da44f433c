// services/engine.go
package services

import (
	"math"
	"time"

	"roast-game-service/models"
)

// Action costs and effects, in matches unless noted.
const (
	StartingMatches = 5

	StokeCost      = 1
	StokeScoreGain = 10

	ShadeCost        = 1
	ShadeScoreDamage = 10

	CopeCost           = 5
	CopeShieldDuration = 1 * time.Hour

	DailyClaimMatches  = 5
	DailyClaimInterval = 24 * time.Hour

	// Throw-shade steal: 5% of the victim's points, capped at 500.
	MaxStealPerAttack = 500
	StealRate         = 0.05
)

// orderedWallets returns the pair in address order. Row locks are
// always acquired in this order so two opposing attacks cannot
// deadlock on each other's rows.
func orderedWallets(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// shieldActive reports whether the profile is immune to shade at now.
func shieldActive(p *models.GameProfile, now time.Time) bool {
	return p.ShieldActiveUntil != nil && p.ShieldActiveUntil.After(now)
}

// applyStoke debits one match and boosts the actor's own score.
// Mutates p only on success.
func applyStoke(p *models.GameProfile) error {
	if p.MatchesBalance < StokeCost {
		return ErrInsufficientBalance
	}
	p.MatchesBalance -= StokeCost
	p.CurrentScore += StokeScoreGain
	return nil
}

// applyShade debits the attacker and, unless the target is shielded,
// knocks points off the target's score (floored at 0). A shielded
// target still costs the attacker a match (wasted attempt): blocked is
// true and only the attacker row changed.
func applyShade(attacker, target *models.GameProfile, now time.Time) (blocked bool, err error) {
	if attacker.MatchesBalance < ShadeCost {
		return false, ErrInsufficientBalance
	}
	attacker.MatchesBalance -= ShadeCost
	if shieldActive(target, now) {
		return true, nil
	}
	target.CurrentScore = max(0, target.CurrentScore-ShadeScoreDamage)
	return false, nil
}

// applyCope debits five matches and grants a one hour shield.
func applyCope(p *models.GameProfile, now time.Time) error {
	if p.MatchesBalance < CopeCost {
		return ErrInsufficientBalance
	}
	p.MatchesBalance -= CopeCost
	shieldEnd := now.Add(CopeShieldDuration)
	p.ShieldActiveUntil = &shieldEnd
	return nil
}

// canClaimDaily reports whether the profile is past the daily claim
// window at now.
func canClaimDaily(p *models.GameProfile, now time.Time) bool {
	return p.LastDailyClaim == nil || now.Sub(*p.LastDailyClaim) >= DailyClaimInterval
}

// stealAmount computes the points an attack transfers from a victim
// holding victimPoints. Zero means the attack is not worth performing.
func stealAmount(victimPoints int64) int64 {
	if victimPoints <= 0 {
		return 0
	}
	steal := int64(math.Floor(float64(victimPoints) * StealRate))
	if steal > MaxStealPerAttack {
		steal = MaxStealPerAttack
	}
	return steal
}
