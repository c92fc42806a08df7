package analytics

import (
	"testing"
	"time"

	"github.com/saulo-duarte/gritboard/internal/task"
	"github.com/stretchr/testify/assert"
)

func completedAtHours(hours ...int) []task.Task {
	tasks := make([]task.Task, 0, len(hours))
	for i, h := range hours {
		tasks = append(tasks, createdAt(octoberAt(1+i%10, h), true, task.PriorityStandard))
	}
	return tasks
}

func TestComputeGritStatsEmpty(t *testing.T) {
	assert.Equal(t, GritStats{Score: 0, Style: StyleConsistentWorker, TotalTrophies: 0}, ComputeGritStats(nil, now))
}

func TestComputeGritStatsSingleTopPriorityAtNight(t *testing.T) {
	tasks := []task.Task{createdAt(octoberAt(3, 2), true, task.PriorityTop)}

	assert.Equal(t, GritStats{Score: 70, Style: StyleMidnightHustler, TotalTrophies: 1}, ComputeGritStats(tasks, now))
}

func TestComputeGritStatsScore(t *testing.T) {
	t.Run("TodayContribution", func(t *testing.T) {
		tasks := []task.Task{
			dueOn(octoberAt(14, 9), true, task.PriorityStandard),
			dueOn(octoberAt(14, 10), true, task.PriorityHigh),
			dueOn(octoberAt(14, 11), false, task.PriorityStandard),
			dueOn(octoberAt(14, 12), false, task.PriorityTop),
		}
		stats := ComputeGritStats(tasks, now)
		assert.Equal(t, 45, stats.Score)
		assert.Equal(t, 2, stats.TotalTrophies)
	})

	t.Run("NotWindowLimited", func(t *testing.T) {
		tasks := []task.Task{
			dueOn(time.Date(2025, time.January, 3, 12, 0, 0, 0, brt), true, task.PriorityHigh),
			dueOn(octoberAt(30, 12), true, task.PriorityStandard),
		}
		assert.Equal(t, 45, ComputeGritStats(tasks, now).Score)
	})

	t.Run("UndatableStillScores", func(t *testing.T) {
		tasks := []task.Task{{ID: "x", Text: "no dates", Completed: true, Priority: task.PriorityTop}}
		stats := ComputeGritStats(tasks, now)
		assert.Equal(t, 70, stats.Score)
		assert.Equal(t, StyleConsistentWorker, stats.Style)
	})

	t.Run("CompletingATaskIncrementsByItsWeight", func(t *testing.T) {
		weights := map[task.Priority]int{
			task.PriorityStandard: 10,
			task.PriorityHigh:     35,
			task.PriorityTop:      70,
		}
		tasks := []task.Task{
			createdAt(octoberAt(2, 12), false, task.PriorityStandard),
			createdAt(octoberAt(3, 12), false, task.PriorityHigh),
			createdAt(octoberAt(4, 12), false, task.PriorityTop),
			createdAt(octoberAt(5, 12), false, task.PriorityHigh),
		}

		prev := ComputeGritStats(tasks, now).Score
		assert.Zero(t, prev)
		for i := range tasks {
			tasks[i].Completed = true
			score := ComputeGritStats(tasks, now).Score
			assert.Equal(t, weights[tasks[i].Priority], score-prev)
			prev = score
		}
		assert.Equal(t, 10+35+70+35, prev)
	})
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0, Score(0, 0, 0))
	assert.Equal(t, 70, Score(1, 0, 1))
	assert.Equal(t, 10*5+25*2+60, Score(5, 2, 1))
}

func TestComputeGritStatsStyle(t *testing.T) {
	tests := []struct {
		name  string
		hours []int
		want  Style
	}{
		{"midnight", []int{2}, StyleMidnightHustler},
		{"midnight beats early bird", []int{9, 9, 9, 2}, StyleMidnightHustler},
		{"midnight and early bird hours", []int{3, 7}, StyleMidnightHustler},
		{"hour five is midnight", []int{5}, StyleMidnightHustler},
		{"early bird", []int{6, 14}, StyleEarlyBird},
		{"hour nine is early bird", []int{9}, StyleEarlyBird},
		{"early bird beats deep focus", []int{8, 14, 14, 14, 14, 14}, StyleEarlyBird},
		{"deep focus", []int{14, 14, 14, 14, 14, 14}, StyleDeepFocusMaster},
		{"deep focus two hours", []int{14, 15, 14, 15, 14, 15, 14}, StyleDeepFocusMaster},
		{"five tasks is not enough", []int{14, 14, 14, 14, 14}, StyleConsistentWorker},
		{"three distinct hours", []int{14, 15, 16, 14, 15, 16}, StyleConsistentWorker},
		{"evening", []int{10, 18, 23}, StyleConsistentWorker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeGritStats(completedAtHours(tt.hours...), now).Style)
		})
	}
}

func TestComputeGritStatsStyleIgnoresPendingTasks(t *testing.T) {
	tasks := []task.Task{
		createdAt(octoberAt(3, 2), false, task.PriorityStandard),
		createdAt(octoberAt(3, 6), false, task.PriorityStandard),
		createdAt(octoberAt(3, 14), true, task.PriorityStandard),
	}
	assert.Equal(t, StyleConsistentWorker, ComputeGritStats(tasks, now).Style)
}

func TestComputeGritStatsHoursInNowLocation(t *testing.T) {
	// 12:00Z is 09:00 in BRT.
	tasks := []task.Task{createdAt(time.Date(2026, time.October, 3, 12, 0, 0, 0, time.UTC), true, task.PriorityStandard)}

	assert.Equal(t, StyleEarlyBird, ComputeGritStats(tasks, now).Style)
	assert.Equal(t, StyleConsistentWorker, ComputeGritStats(tasks, now.UTC()).Style)
}
