package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mtsfitness/fitness-backend/internal/logger"
)

// ExerciseCacheRepository provides cached exercise-catalog payloads using Redis
type ExerciseCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached payloads
}

// NewExerciseCacheRepository creates a new repository instance with optional TTL
func NewExerciseCacheRepository(client *redis.Client, expiration time.Duration) *ExerciseCacheRepository {
	return &ExerciseCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetByTarget fetches a cached catalog payload for a muscle group and limit
func (r *ExerciseCacheRepository) GetByTarget(ctx context.Context, muscle string, limit int) ([]byte, error) {
	key := exerciseKey(muscle, limit)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("exercises not found in cache for %s", muscle)
		}
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result_size", len(val),
		"error", nil,
	)

	return val, nil
}

// SetByTarget caches a catalog payload for a muscle group in Redis with expiration
func (r *ExerciseCacheRepository) SetByTarget(ctx context.Context, muscle string, limit int, payload []byte) error {
	key := exerciseKey(muscle, limit)
	err := r.client.Set(ctx, key, payload, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"payload_size", len(payload),
		"error", err,
	)

	return err
}

func exerciseKey(muscle string, limit int) string {
	return fmt.Sprintf("exercises:%s:%d", muscle, limit)
}
