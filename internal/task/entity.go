package task

import (
	"time"

	util "github.com/saulo-duarte/gritboard/internal/utils"
)

type Task struct {
	ID        string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	DueDate   string    `gorm:"column:due_date;type:text" json:"dueDate,omitempty"`
	Priority  Priority  `gorm:"type:text;not null;default:'standard'" json:"priority"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Task) TableName() string {
	return "tasks"
}

// EffectiveDate is the due date when one is set, the creation time otherwise.
// A due date that does not parse is not replaced by the creation time: the
// task is reported as undatable. Zoneless due dates are read in loc.
func (t Task) EffectiveDate(loc *time.Location) (time.Time, bool) {
	if t.DueDate != "" {
		return util.ParseTimestamp(t.DueDate, loc)
	}
	if t.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return t.CreatedAt, true
}

func (t Task) IsHighPriority() bool {
	return t.Priority == PriorityHigh
}

func (t Task) IsTopPriority() bool {
	return t.Priority == PriorityTop
}
