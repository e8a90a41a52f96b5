package cache

import (
	"askgate/internal/model"
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const statsKey = "askgate:stats"

// Hash fields of the stats counter
const (
	fieldTotal = "total"
	fieldEmpty = "empty"
)

// StatsCache keeps running ask counters in a Redis hash
type StatsCache interface {
	Record(ctx context.Context, event *model.AskEvent) error
	Get(ctx context.Context) (*model.AskStats, error)
}

type statsCache struct {
	client *redis.Client
	key    string
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		key:    statsKey,
	}
}

// Record bumps the counters for one event in a single round trip
func (c *statsCache) Record(ctx context.Context, event *model.AskEvent) error {
	pipe := c.client.TxPipeline()
	pipe.HIncrBy(ctx, c.key, fieldTotal, 1)
	pipe.HIncrBy(ctx, c.key, string(event.Outcome), 1)
	if event.Empty {
		pipe.HIncrBy(ctx, c.key, fieldEmpty, 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *statsCache) Get(ctx context.Context) (*model.AskStats, error) {
	fields, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, err
	}
	return statsFromHash(fields), nil
}

func statsFromHash(fields map[string]string) *model.AskStats {
	count := func(name string) int64 {
		n, _ := strconv.ParseInt(fields[name], 10, 64)
		return n
	}
	return &model.AskStats{
		Total:       count(fieldTotal),
		OK:          count(string(model.OutcomeOK)),
		BadQuestion: count(string(model.OutcomeBadQuestion)),
		Error:       count(string(model.OutcomeError)),
		Empty:       count(fieldEmpty),
	}
}
