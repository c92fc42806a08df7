package task

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrSnapshotUnavailable = errors.New("task snapshot unavailable")

// SnapshotSource delivers the full current task collection. Every call returns
// a fresh slice owned by the caller.
type SnapshotSource interface {
	Snapshot(ctx context.Context) ([]Task, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SnapshotSource {
	return &gormRepository{db: db}
}

// snapshotQuery lists every task, newest first.
func snapshotQuery(tx *gorm.DB) *gorm.DB {
	return tx.Model(&Task{}).Order("created_at DESC")
}

func (r *gormRepository) Snapshot(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := snapshotQuery(r.db.WithContext(ctx)).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}
	normalizePriorities(tasks)
	return tasks, nil
}

// normalizePriorities folds stored values the engine does not know, such as
// the old backend's "normal", into PriorityStandard.
func normalizePriorities(tasks []Task) {
	for i := range tasks {
		tasks[i].Priority = ParsePriority(string(tasks[i].Priority))
	}
}
