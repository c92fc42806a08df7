// Package analytics derives completion statistics, the weekly trend and the
// grit score from a task snapshot. The Compute* functions are pure: same
// snapshot and same now, same result.
package analytics

import (
	"time"

	"github.com/saulo-duarte/gritboard/internal/task"
)

const (
	maxWeeklyStars      = 5
	monthlyTrophyTarget = 30
)

type Options struct {
	WeekStart time.Weekday
}

func DefaultOptions() Options {
	return Options{WeekStart: time.Sunday}
}

type Dashboard struct {
	GeneratedAt           time.Time    `json:"generatedAt"`
	Grit                  GritStats    `json:"grit"`
	Windows               WindowStats  `json:"windows"`
	Trend                 []TrendPoint `json:"trend"`
	DailyTrend            int          `json:"dailyTrend"`
	MasteryMultiplier     float64      `json:"masteryMultiplier"`
	WeeklyStars           int          `json:"weeklyStars"`
	MonthlyTrophyProgress int          `json:"monthlyTrophyProgress"`
}

// Compute runs every derivation against the same now.
func Compute(tasks []task.Task, now time.Time, opts Options) Dashboard {
	grit := ComputeGritStats(tasks, now)
	windows := ComputeWindowStats(tasks, now, opts)
	trend := ComputeTrend(tasks, now)

	return Dashboard{
		GeneratedAt:           now,
		Grit:                  grit,
		Windows:               windows,
		Trend:                 trend,
		DailyTrend:            DailyTrend(trend),
		MasteryMultiplier:     MasteryMultiplier(grit.Score),
		WeeklyStars:           WeeklyStars(windows.Weekly),
		MonthlyTrophyProgress: MonthlyTrophyProgress(windows.MonthlyTrophies),
	}
}

// MasteryMultiplier is 1 + score/1000 rounded half up to two decimals.
func MasteryMultiplier(score int) float64 {
	if score < 0 {
		score = 0
	}
	hundredths := 100 + (score+5)/10
	return float64(hundredths) / 100
}

// WeeklyStars awards one star per started 20 points of weekly rate, up to 5.
func WeeklyStars(weeklyRate int) int {
	if weeklyRate <= 0 {
		return 0
	}
	return min(maxWeeklyStars, (weeklyRate+19)/20)
}

// MonthlyTrophyProgress is the percentage of the monthly trophy target reached.
func MonthlyTrophyProgress(trophies int) int {
	return min(100, Rate(trophies, monthlyTrophyTarget))
}
