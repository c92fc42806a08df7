package task

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/gritboard/internal/config"
	util "github.com/saulo-duarte/gritboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// document is the stored JSON shape. Records migrated from the old document
// store carry "_id" instead of "id".
type document struct {
	ID        string `json:"id"`
	LegacyID  string `json:"_id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"createdAt"`
}

type redisRepository struct {
	client redis.Cmdable
	key    string
	loc    *time.Location
}

// NewRedisRepository reads tasks stored as JSON documents in the hash at key,
// one field per task id.
func NewRedisRepository(client redis.Cmdable, key string, loc *time.Location) SnapshotSource {
	return &redisRepository{client: client, key: key, loc: loc}
}

func (r *redisRepository) Snapshot(ctx context.Context) ([]Task, error) {
	log := config.WithContext(ctx)

	docs, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}

	tasks := make([]Task, 0, len(docs))
	for field, raw := range docs {
		t, err := decodeDocument(field, []byte(raw), r.loc)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"key":   r.key,
				"field": field,
			}).Warn("Skipping undecodable task document")
			continue
		}
		tasks = append(tasks, t)
	}

	sortNewestFirst(tasks)
	return tasks, nil
}

func decodeDocument(field string, raw []byte, loc *time.Location) (Task, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Task{}, err
	}

	id := doc.ID
	if id == "" {
		id = doc.LegacyID
	}
	if id == "" {
		id = field
	}

	// An unparsable createdAt leaves the zero time, which EffectiveDate
	// treats as undatable.
	createdAt, _ := util.ParseTimestamp(doc.CreatedAt, loc)

	return Task{
		ID:        id,
		Text:      doc.Text,
		Completed: doc.Completed,
		DueDate:   doc.DueDate,
		Priority:  ParsePriority(doc.Priority),
		CreatedAt: createdAt,
	}, nil
}

// sortNewestFirst matches the relational ordering. Hash iteration order is
// random, so ties are broken by id to keep snapshots deterministic.
func sortNewestFirst(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
}
