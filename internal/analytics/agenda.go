package analytics

import (
	"strconv"
	"time"

	"github.com/saulo-duarte/gritboard/internal/task"
)

type DayAgenda struct {
	Date      string      `json:"date"`
	Pending   []task.Task `json:"pending"`
	Completed []task.Task `json:"completed"`
	HasTop    bool        `json:"hasTop"`
	HasHigh   bool        `json:"hasHigh"`
	Hint      string      `json:"hint"`
}

// ComputeDayAgenda lists the tasks falling on date's calendar day, in input
// order, along with the hint shown on the calendar tile: the first top
// priority task, else the first high priority one, else a count.
func ComputeDayAgenda(tasks []task.Task, date time.Time) DayAgenda {
	agenda := DayAgenda{
		Date:      date.Format("2006-01-02"),
		Pending:   []task.Task{},
		Completed: []task.Task{},
	}

	day := onDay(dateTasks(tasks, date.Location()), date)
	if len(day) == 0 {
		return agenda
	}

	var topText, highText string
	for _, t := range day {
		if t.Completed {
			agenda.Completed = append(agenda.Completed, t.Task)
		} else {
			agenda.Pending = append(agenda.Pending, t.Task)
		}

		if t.IsTopPriority() && !agenda.HasTop {
			agenda.HasTop = true
			topText = t.Text
		}
		if t.IsHighPriority() && !agenda.HasHigh {
			agenda.HasHigh = true
			highText = t.Text
		}
	}

	switch {
	case agenda.HasTop:
		agenda.Hint = topText
	case agenda.HasHigh:
		agenda.Hint = highText
	default:
		agenda.Hint = strconv.Itoa(len(day)) + " tasks"
	}
	return agenda
}
