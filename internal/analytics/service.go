package analytics

import (
	"context"
	"time"

	"github.com/saulo-duarte/gritboard/internal/config"
	"github.com/saulo-duarte/gritboard/internal/task"
	"github.com/sirupsen/logrus"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context, now time.Time, opts Options) (*Dashboard, error)
	Agenda(ctx context.Context, date time.Time) (*DayAgenda, error)
}

type analyticsService struct {
	source task.SnapshotSource
}

func NewService(source task.SnapshotSource) AnalyticsService {
	return &analyticsService{source: source}
}

func (s *analyticsService) snapshot(ctx context.Context, log logrus.FieldLogger) ([]task.Task, error) {
	tasks, err := s.source.Snapshot(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load task snapshot")
		return nil, err
	}
	return tasks, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, now time.Time, opts Options) (*Dashboard, error) {
	log := config.WithContext(ctx)

	tasks, err := s.snapshot(ctx, log)
	if err != nil {
		return nil, err
	}

	dashboard := Compute(tasks, now, opts)

	log.WithFields(logrus.Fields{
		"tasks":      len(tasks),
		"now":        now.Format(time.RFC3339),
		"week_start": opts.WeekStart.String(),
		"score":      dashboard.Grit.Score,
	}).Debug("Dashboard computed")
	return &dashboard, nil
}

func (s *analyticsService) Agenda(ctx context.Context, date time.Time) (*DayAgenda, error) {
	log := config.WithContext(ctx)

	tasks, err := s.snapshot(ctx, log)
	if err != nil {
		return nil, err
	}

	agenda := ComputeDayAgenda(tasks, date)
	log.WithFields(logrus.Fields{
		"date":      agenda.Date,
		"pending":   len(agenda.Pending),
		"completed": len(agenda.Completed),
	}).Debug("Day agenda computed")
	return &agenda, nil
}
