package analytics

import (
	"time"

	jnow "github.com/jinzhu/now"
	"github.com/saulo-duarte/gritboard/internal/task"
)

// datedTask pairs a task with its effective date in the reference location.
type datedTask struct {
	task.Task
	at time.Time
}

// dateTasks drops every task whose effective date cannot be resolved. Those
// tasks never match a window or a day.
func dateTasks(tasks []task.Task, loc *time.Location) []datedTask {
	out := make([]datedTask, 0, len(tasks))
	for _, t := range tasks {
		at, ok := t.EffectiveDate(loc)
		if !ok {
			continue
		}
		out = append(out, datedTask{Task: t, at: at.In(loc)})
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	cfg := &jnow.Config{WeekStartDay: weekStart, TimeLocation: t.Location()}
	return cfg.With(t).BeginningOfWeek()
}

func startOfMonth(t time.Time) time.Time {
	return jnow.With(t).BeginningOfMonth()
}

// within is inclusive on both ends.
func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func onDay(tasks []datedTask, day time.Time) []datedTask {
	var out []datedTask
	for _, t := range tasks {
		if sameDay(t.at, day) {
			out = append(out, t)
		}
	}
	return out
}

func between(tasks []datedTask, start, end time.Time) []datedTask {
	var out []datedTask
	for _, t := range tasks {
		if within(t.at, start, end) {
			out = append(out, t)
		}
	}
	return out
}

func countCompleted(tasks []datedTask) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
