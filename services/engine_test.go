package services

import (
	"testing"
	"time"

	"roast-game-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWith(balance, score int) *models.GameProfile {
	return &models.GameProfile{
		WalletAddress:  "0x00000000000000000000000000000000000000aa",
		MatchesBalance: balance,
		CurrentScore:   score,
		League:         models.LeagueShrimp,
	}
}

func TestStokeBoostsScoreAndDebitsMatch(t *testing.T) {
	p := profileWith(3, 50)

	require.NoError(t, applyStoke(p))

	assert.Equal(t, 60, p.CurrentScore)
	assert.Equal(t, 2, p.MatchesBalance)
}

func TestStokeInsufficientBalanceLeavesStateUnchanged(t *testing.T) {
	p := profileWith(0, 50)

	err := applyStoke(p)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 50, p.CurrentScore)
	assert.Equal(t, 0, p.MatchesBalance)
}

func TestShadeDamagesUnshieldedTarget(t *testing.T) {
	now := time.Now()
	attacker := profileWith(2, 0)
	target := profileWith(5, 30)

	blocked, err := applyShade(attacker, target, now)

	require.NoError(t, err)
	assert.False(t, blocked)
	assert.Equal(t, 20, target.CurrentScore)
	assert.Equal(t, 1, attacker.MatchesBalance)
	assert.Equal(t, 5, target.MatchesBalance) // target pays nothing
}

func TestShadeScoreFloorsAtZero(t *testing.T) {
	now := time.Now()
	attacker := profileWith(1, 0)
	target := profileWith(0, 5)

	blocked, err := applyShade(attacker, target, now)

	require.NoError(t, err)
	assert.False(t, blocked)
	assert.Equal(t, 0, target.CurrentScore)
}

func TestShadeAgainstShieldWastesMatch(t *testing.T) {
	now := time.Now()
	shieldEnd := now.Add(30 * time.Minute)
	attacker := profileWith(2, 0)
	target := profileWith(0, 30)
	target.ShieldActiveUntil = &shieldEnd

	blocked, err := applyShade(attacker, target, now)

	require.NoError(t, err)
	assert.True(t, blocked)
	assert.Equal(t, 30, target.CurrentScore) // unchanged
	assert.Equal(t, 1, attacker.MatchesBalance)
}

func TestShadeExpiredShieldDoesNotBlock(t *testing.T) {
	now := time.Now()
	shieldEnd := now.Add(-1 * time.Minute)
	attacker := profileWith(1, 0)
	target := profileWith(0, 30)
	target.ShieldActiveUntil = &shieldEnd

	blocked, err := applyShade(attacker, target, now)

	require.NoError(t, err)
	assert.False(t, blocked)
	assert.Equal(t, 20, target.CurrentScore)
}

func TestShadeInsufficientBalance(t *testing.T) {
	now := time.Now()
	attacker := profileWith(0, 0)
	target := profileWith(0, 30)

	_, err := applyShade(attacker, target, now)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 30, target.CurrentScore)
}

func TestCopeGrantsOneHourShield(t *testing.T) {
	now := time.Now()
	p := profileWith(5, 0)

	require.NoError(t, applyCope(p, now))

	assert.Equal(t, 0, p.MatchesBalance)
	require.NotNil(t, p.ShieldActiveUntil)
	assert.WithinDuration(t, now.Add(time.Hour), *p.ShieldActiveUntil, time.Second)
	assert.True(t, shieldActive(p, now))
}

func TestCopeInsufficientBalance(t *testing.T) {
	p := profileWith(4, 0)

	err := applyCope(p, time.Now())

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, 4, p.MatchesBalance)
	assert.Nil(t, p.ShieldActiveUntil)
}

func TestStealAmount(t *testing.T) {
	cases := []struct {
		name         string
		victimPoints int64
		want         int64
	}{
		{"five percent", 1000, 50},
		{"capped at 500", 20000, 500},
		{"exactly at cap", 10000, 500},
		{"too few points", 5, 0},
		{"nineteen floors to zero", 19, 0},
		{"twenty is the minimum viable victim", 20, 1},
		{"zero points", 0, 0},
		{"negative clamps to zero", -10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stealAmount(tc.victimPoints))
		})
	}
}

func TestOrderedWalletsIsDeterministic(t *testing.T) {
	a := "0x00000000000000000000000000000000000000aa"
	b := "0x00000000000000000000000000000000000000bb"

	// Opposing attacks must acquire row locks in the same order.
	firstAB, secondAB := orderedWallets(a, b)
	firstBA, secondBA := orderedWallets(b, a)

	assert.Equal(t, firstAB, firstBA)
	assert.Equal(t, secondAB, secondBA)
	assert.Equal(t, a, firstAB)
	assert.Equal(t, b, secondAB)
}

func TestRoastCooldownWindow(t *testing.T) {
	now := time.Now()

	// blocked immediately after a roast and right up to the boundary
	assert.True(t, withinRoastCooldown(now, now))
	assert.True(t, withinRoastCooldown(now.Add(-RoastCooldown+time.Second), now))

	// clear once the full window has elapsed
	assert.False(t, withinRoastCooldown(now.Add(-RoastCooldown), now))
	assert.False(t, withinRoastCooldown(now.Add(-RoastCooldown-time.Second), now))
}

func TestDailyClaimWindow(t *testing.T) {
	now := time.Now()

	fresh := profileWith(0, 0)
	assert.True(t, canClaimDaily(fresh, now))

	recent := now.Add(-23 * time.Hour)
	fresh.LastDailyClaim = &recent
	assert.False(t, canClaimDaily(fresh, now))

	stale := now.Add(-25 * time.Hour)
	fresh.LastDailyClaim = &stale
	assert.True(t, canClaimDaily(fresh, now))
}
