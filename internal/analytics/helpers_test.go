package analytics

import (
	"strconv"
	"time"

	"github.com/saulo-duarte/gritboard/internal/task"
)

var brt = time.FixedZone("BRT", -3*60*60)

// Wednesday afternoon.
var now = time.Date(2026, time.October, 14, 15, 30, 0, 0, brt)

func octoberAt(day, hour int) time.Time {
	return time.Date(2026, time.October, day, hour, 0, 0, 0, brt)
}

var seq int

func nextID() string {
	seq++
	return "task-" + strconv.Itoa(seq)
}

// dueOn builds a task due at the given instant, created at noon on October 1st.
func dueOn(at time.Time, completed bool, p task.Priority) task.Task {
	return task.Task{
		ID:        nextID(),
		Text:      "due " + at.Format(time.RFC3339),
		Completed: completed,
		DueDate:   at.Format(time.RFC3339),
		Priority:  p,
		CreatedAt: octoberAt(1, 12),
	}
}

// createdAt builds a task without a due date.
func createdAt(at time.Time, completed bool, p task.Priority) task.Task {
	return task.Task{
		ID:        nextID(),
		Text:      "created " + at.Format(time.RFC3339),
		Completed: completed,
		Priority:  p,
		CreatedAt: at,
	}
}
