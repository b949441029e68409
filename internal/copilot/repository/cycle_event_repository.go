package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/common"
	redisPkg "golang-stock-copilot/pkg/redis"
)

// CycleEventRepository announces completed analysis cycles.
type CycleEventRepository interface {
	Publish(ctx context.Context, event dto.CycleEvent) error
}

type redisCycleEventRepository struct {
	client *redisPkg.Client
	maxLen int64
}

// NewRedisCycleEventRepository appends cycle events to a capped Redis stream.
func NewRedisCycleEventRepository(client *redisPkg.Client, maxLen int64) CycleEventRepository {
	return &redisCycleEventRepository{client: client, maxLen: maxLen}
}

func (r *redisCycleEventRepository) Publish(ctx context.Context, event dto.CycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal cycle event: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: common.RedisStreamAnalysisCompleted,
		Values: map[string]interface{}{"payload": payload},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}
	return r.client.XAdd(ctx, args).Err()
}
