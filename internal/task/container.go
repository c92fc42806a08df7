package task

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/gritboard/internal/config"
	"gorm.io/gorm"
)

type TaskContainer struct {
	Source SnapshotSource
}

// NewTaskContainer picks the backend named by store. Only the client for the
// selected backend needs to be non-nil.
func NewTaskContainer(store string, db *gorm.DB, rdb *redis.Client, redisKey string, loc *time.Location) (*TaskContainer, error) {
	var source SnapshotSource

	switch store {
	case config.StorePostgres:
		source = NewRepository(db)
	case config.StoreRedis:
		source = NewRedisRepository(rdb, redisKey, loc)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, store)
	}

	return &TaskContainer{
		Source: source,
	}, nil
}
