// Package scoring evaluates answers: a speed-scaled base plus a streak
// bonus. Everything here is pure so it can be tested without a room.
package scoring

import "math"

// Result is the outcome sent back to the answering player.
type Result struct {
	IsCorrect  bool `json:"isCorrect"`
	Points     int  `json:"points"`
	TotalScore int  `json:"totalScore"`
	Streak     int  `json:"streak"`
}

// Evaluate scores a single answer. The base decays linearly from 1000 at
// full time remaining down to 500 at zero; the streak bonus is a fixed
// step table. An incorrect answer scores nothing and resets the streak.
// timeLeft and maxTime are client-reported; maxTime must be positive and
// timeLeft is clamped to [0, maxTime].
func Evaluate(chosen, correct, timeLeft, maxTime, streak int) (points int, newStreak int, isCorrect bool) {
	if chosen != correct {
		return 0, 0, false
	}
	newStreak = streak + 1

	if timeLeft < 0 {
		timeLeft = 0
	}
	if timeLeft > maxTime {
		timeLeft = maxTime
	}
	base := int(math.Round(500 + 500*(float64(timeLeft)/float64(maxTime))))

	return base + streakBonus(newStreak), newStreak, true
}

func streakBonus(streak int) int {
	switch {
	case streak >= 6:
		return 500
	case streak == 5:
		return 400
	case streak == 4:
		return 300
	case streak == 3:
		return 200
	case streak == 2:
		return 100
	default:
		return 0
	}
}
