package analytics

import (
	"time"

	"github.com/saulo-duarte/gritboard/internal/task"
)

type Style string

const (
	StyleMidnightHustler  Style = "Midnight Hustler"
	StyleEarlyBird        Style = "Early Bird"
	StyleDeepFocusMaster  Style = "Deep Focus Master"
	StyleConsistentWorker Style = "Consistent Worker"
)

const (
	pointsPerCompletion = 10
	highPriorityBonus   = 25
	topPriorityBonus    = 60
)

type GritStats struct {
	Score         int   `json:"score"`
	Style         Style `json:"style"`
	TotalTrophies int   `json:"totalTrophies"`
}

// workProfile is what the style rules look at: the creation hours of the
// completed tasks.
type workProfile struct {
	completed     int
	hours         []int
	distinctHours int
}

type styleRule struct {
	style   Style
	matches func(p workProfile) bool
}

// styleRules are evaluated in order and the first match wins. The hour
// ranges overlap at 5 on purpose.
var styleRules = []styleRule{
	{StyleMidnightHustler, anyHourIn(0, 5)},
	{StyleEarlyBird, anyHourIn(5, 9)},
	{StyleDeepFocusMaster, func(p workProfile) bool {
		return p.completed > 5 && p.distinctHours < 3
	}},
}

func anyHourIn(from, to int) func(p workProfile) bool {
	return func(p workProfile) bool {
		for _, h := range p.hours {
			if h >= from && h <= to {
				return true
			}
		}
		return false
	}
}

func classify(p workProfile) Style {
	for _, r := range styleRules {
		if r.matches(p) {
			return r.style
		}
	}
	return StyleConsistentWorker
}

// ComputeGritStats scores every completed task regardless of its date. Hours
// are read in now's location; a completed task without a creation time still
// scores but contributes no hour.
func ComputeGritStats(tasks []task.Task, now time.Time) GritStats {
	loc := now.Location()

	var completed, high, top int
	var hours []int
	seen := make(map[int]struct{})

	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		completed++
		if t.IsHighPriority() {
			high++
		}
		if t.IsTopPriority() {
			top++
		}
		if t.CreatedAt.IsZero() {
			continue
		}
		h := t.CreatedAt.In(loc).Hour()
		hours = append(hours, h)
		seen[h] = struct{}{}
	}

	return GritStats{
		Score:         Score(completed, high, top),
		Style:         classify(workProfile{completed: completed, hours: hours, distinctHours: len(seen)}),
		TotalTrophies: completed,
	}
}

// Score counts every completion once at the base rate and adds the priority
// bonus on top, so a completed top-priority task is worth 70.
func Score(completed, high, top int) int {
	return pointsPerCompletion*completed + highPriorityBonus*high + topPriorityBonus*top
}
