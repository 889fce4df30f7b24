package pregnancy

import (
	"math"
	"time"
)

const (
	FirstWeek = 1
	LastWeek  = 40
)

// Trimester describes one of the three stages of pregnancy.
type Trimester struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var trimesters = [3]Trimester{
	{Number: 1, Name: "First", Description: "The foundation stage where all major organs begin to form."},
	{Number: 2, Name: "Second", Description: "The most comfortable period with noticeable baby movements."},
	{Number: 3, Name: "Third", Description: "The home stretch! Baby is preparing for birth."},
}

// TrimesterFor classifies a week: up to 12 is First, up to 26 Second,
// anything later Third.
func TrimesterFor(week int) Trimester {
	switch {
	case week <= 12:
		return trimesters[0]
	case week <= 26:
		return trimesters[1]
	default:
		return trimesters[2]
	}
}

func ClampWeek(week int) int {
	return min(max(week, FirstWeek), LastWeek)
}

// EstimateWeek derives the current week from a due date:
// 40 - floor(daysUntilDue/7), clamped to [1, 40]. Both dates are compared
// as calendar days in UTC.
func EstimateWeek(due Date, now time.Time) int {
	today := DateOf(now)
	days := int(due.Time().Sub(today.Time()).Hours() / 24)
	weeksLeft := int(math.Floor(float64(days) / 7))
	return ClampWeek(LastWeek - weeksLeft)
}

// ProgressPercent is the share of the 40 weeks completed, rounded.
func ProgressPercent(week int) int {
	return int(math.Round(float64(week) / LastWeek * 100))
}
