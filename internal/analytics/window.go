package analytics

import (
	"time"

	"github.com/saulo-duarte/gritboard/internal/task"
)

type WindowStats struct {
	Daily           int `json:"daily"`
	Weekly          int `json:"weekly"`
	Monthly         int `json:"monthly"`
	MonthlyTrophies int `json:"monthlyTrophies"`
}

// Rate returns the completion percentage rounded half up, or 0 for an empty set.
func Rate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

func rateOf(tasks []datedTask) int {
	return Rate(countCompleted(tasks), len(tasks))
}

// ComputeWindowStats rates today, the week so far and the month so far. The
// week and month windows end at now, so tasks dated later today only count
// toward the daily rate.
func ComputeWindowStats(tasks []task.Task, now time.Time, opts Options) WindowStats {
	dated := dateTasks(tasks, now.Location())

	daily := onDay(dated, now)
	weekly := between(dated, startOfWeek(now, opts.WeekStart), now)
	monthly := between(dated, startOfMonth(now), now)

	return WindowStats{
		Daily:           rateOf(daily),
		Weekly:          rateOf(weekly),
		Monthly:         rateOf(monthly),
		MonthlyTrophies: countCompleted(monthly),
	}
}
