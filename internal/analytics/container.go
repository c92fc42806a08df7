package analytics

import (
	"time"

	"github.com/saulo-duarte/gritboard/internal/task"
)

type AnalyticsContainer struct {
	Handler *Handler
	Service AnalyticsService
}

func NewAnalyticsContainer(source task.SnapshotSource, loc *time.Location, defaults Options) *AnalyticsContainer {
	service := NewService(source)
	handler := NewHandler(service, time.Now, loc, defaults)

	return &AnalyticsContainer{
		Handler: handler,
		Service: service,
	}
}
