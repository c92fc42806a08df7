package analytics

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/saulo-duarte/gritboard/internal/task"
)

const trendDays = 7

type TrendPoint struct {
	Label       string `json:"label"`
	FullDate    string `json:"fullDate"`
	CurrentRate int    `json:"currentRate"`
	PrevRate    int    `json:"prevRate"`
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
}

// ComputeTrend returns one point per day for the week ending at now, oldest
// first. Each day is compared with the same weekday one week earlier.
func ComputeTrend(tasks []task.Task, now time.Time) []TrendPoint {
	dated := dateTasks(tasks, now.Location())

	points := make([]TrendPoint, 0, trendDays)
	for d := trendDays - 1; d >= 0; d-- {
		date := now.AddDate(0, 0, -d)
		prevDate := now.AddDate(0, 0, -(d + trendDays))

		dayTasks := onDay(dated, date)
		prevDayTasks := onDay(dated, prevDate)

		points = append(points, TrendPoint{
			Label:       date.Format("Mon"),
			FullDate:    fullDate(date),
			CurrentRate: rateOf(dayTasks),
			PrevRate:    rateOf(prevDayTasks),
			Completed:   countCompleted(dayTasks),
			Total:       len(dayTasks),
		})
	}
	return points
}

// DailyTrend is today's rate minus yesterday's, read off the last two points.
func DailyTrend(points []TrendPoint) int {
	if len(points) < 2 {
		return 0
	}
	return points[len(points)-1].CurrentRate - points[len(points)-2].CurrentRate
}

// fullDate renders "October 14th".
func fullDate(t time.Time) string {
	return t.Format("January") + " " + humanize.Ordinal(t.Day())
}
