package container

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/gritboard/internal/analytics"
	"github.com/saulo-duarte/gritboard/internal/config"
	"github.com/saulo-duarte/gritboard/internal/task"
)

type Container struct {
	Settings           *config.Settings
	TaskContainer      *task.TaskContainer
	AnalyticsContainer *analytics.AnalyticsContainer
}

func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.Init(settings.LogLevel)

	var rdb *redis.Client
	switch settings.TaskStore {
	case config.StorePostgres:
		if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
			return nil, err
		}
	case config.StoreRedis:
		rdb, err = config.ConnectRedis(ctx, settings.RedisAddr, settings.RedisPassword, settings.RedisDB)
		if err != nil {
			return nil, err
		}
	}

	taskContainer, err := task.NewTaskContainer(
		settings.TaskStore,
		config.DB,
		rdb,
		settings.RedisTasksKey,
		settings.Location,
	)
	if err != nil {
		return nil, err
	}

	analyticsContainer := analytics.NewAnalyticsContainer(
		taskContainer.Source,
		settings.Location,
		analytics.Options{WeekStart: settings.WeekStart},
	)

	config.Log.WithField("store", settings.TaskStore).Info("Containers initialized")

	return &Container{
		Settings:           settings,
		TaskContainer:      taskContainer,
		AnalyticsContainer: analyticsContainer,
	}, nil
}
