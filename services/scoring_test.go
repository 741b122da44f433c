package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePointsSeasonStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	card := calculatePointsAt(now, now, false)

	assert.Equal(t, 200, card.Points)
	assert.Equal(t, 2.0, card.Multiplier)
	assert.Equal(t, "Base(100) * Time(2x)", card.Breakdown)
}

func TestCalculatePointsTenDaysDecay(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	seasonStart := now.AddDate(0, 0, -10)

	card := calculatePointsAt(now, seasonStart, false)

	// 2.0 - 10*0.05 = 1.5
	assert.Equal(t, 150, card.Points)
	assert.Equal(t, 1.5, card.Multiplier)
}

func TestCalculatePointsFloorsWithFriendBonus(t *testing.T) {
	now := time.Date(2025, 7, 11, 12, 0, 0, 0, time.UTC)
	seasonStart := now.AddDate(0, 0, -40)

	card := calculatePointsAt(now, seasonStart, true)

	// time multiplier floors at 0.5; friend doubles it back to 100
	assert.Equal(t, 100, card.Points)
	assert.Equal(t, 1.0, card.Multiplier)
	assert.Equal(t, "Base(100) * Time(0.5x) * Friend(2x)", card.Breakdown)
}

func TestCalculatePointsFriendBonusDoubles(t *testing.T) {
	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	seasonStart := now.AddDate(0, 0, -10)

	plain := calculatePointsAt(now, seasonStart, false)
	friend := calculatePointsAt(now, seasonStart, true)

	assert.Equal(t, plain.Points*2, friend.Points)
}

func TestCalculatePointsFutureSeasonStartClamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seasonStart := now.AddDate(0, 0, 3) // clock skew: season "starts" later

	card := calculatePointsAt(now, seasonStart, false)

	assert.Equal(t, 200, card.Points)
}

func TestCalculatePointsPartialDayDoesNotDecay(t *testing.T) {
	seasonStart := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := seasonStart.Add(23 * time.Hour)

	card := calculatePointsAt(now, seasonStart, false)

	// whole days only: 23h elapsed is still day zero
	assert.Equal(t, 200, card.Points)
}
