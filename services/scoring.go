// services/scoring.go
package services

import (
	"fmt"
	"math"
	"time"
)

// Scoring constants (tunable via config/env later)
const (
	BaseRoastPoints       = 100
	FriendBonusMultiplier = 2.0
	DecayRatePerDay       = 0.05
	MinDecayMultiplier    = 0.5
)

// Scorecard is the result of scoring a single roast.
type Scorecard struct {
	Points     int     `json:"points"`
	Multiplier float64 `json:"multiplier"`
	Breakdown  string  `json:"breakdown"`
}

// CalculatePoints returns the points awarded for a roast. The earlier in
// a season a roast happens the more it is worth: the multiplier starts
// at 2.0x, decays by 0.05 per elapsed day and floors at 0.5x. Friend
// roasts are worth double.
func CalculatePoints(seasonStart time.Time, isFriendRoast bool) Scorecard {
	return calculatePointsAt(time.Now(), seasonStart, isFriendRoast)
}

func calculatePointsAt(now, seasonStart time.Time, isFriendRoast bool) Scorecard {
	daysElapsed := int(now.Sub(seasonStart).Hours() / 24)
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	timeMultiplier := 2.0 - float64(daysElapsed)*DecayRatePerDay
	if timeMultiplier < MinDecayMultiplier {
		timeMultiplier = MinDecayMultiplier
	}
	// Round to 2 decimal places for clean display
	timeMultiplier = math.Round(timeMultiplier*100) / 100

	friendMultiplier := 1.0
	if isFriendRoast {
		friendMultiplier = FriendBonusMultiplier
	}

	totalMultiplier := timeMultiplier * friendMultiplier
	points := int(math.Round(BaseRoastPoints * totalMultiplier))

	breakdown := fmt.Sprintf("Base(%d) * Time(%gx)", BaseRoastPoints, timeMultiplier)
	if isFriendRoast {
		breakdown += fmt.Sprintf(" * Friend(%gx)", friendMultiplier)
	}

	return Scorecard{Points: points, Multiplier: totalMultiplier, Breakdown: breakdown}
}
