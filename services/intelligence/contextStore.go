package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"dharmachain/models"

	"github.com/go-redis/redis/v8"
)

const appealCachePrefix = "ai:appeal:"

// AppealCacheTTL is how long a generated appeal is reused for the same request.
const AppealCacheTTL = 30 * time.Minute

// ErrAppealNotCached is returned on a cache miss.
var ErrAppealNotCached = errors.New("appeal not cached")

// AppealStore caches generated appeals by category and priority.
type AppealStore interface {
	Get(ctx context.Context, req models.AppealRequest) (string, error)
	Set(ctx context.Context, req models.AppealRequest, text string) error
}

type RedisAppealStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAppealStore(client *redis.Client, ttl time.Duration) *RedisAppealStore {
	if ttl <= 0 {
		ttl = AppealCacheTTL
	}
	return &RedisAppealStore{client: client, ttl: ttl}
}

func (s *RedisAppealStore) Get(ctx context.Context, req models.AppealRequest) (string, error) {
	data, err := s.client.Get(ctx, appealKey(req)).Result()
	if err == redis.Nil {
		return "", ErrAppealNotCached
	}
	if err != nil {
		return "", err
	}
	var resp models.AppealResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return "", err
	}
	return resp.AppealText, nil
}

func (s *RedisAppealStore) Set(ctx context.Context, req models.AppealRequest, text string) error {
	b, err := json.Marshal(models.AppealResponse{AppealText: text})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, appealKey(req), b, s.ttl).Err()
}

func appealKey(req models.AppealRequest) string {
	norm := strings.ToLower(strings.TrimSpace(req.Category)) + "\x00" + strings.ToLower(strings.TrimSpace(req.Priority))
	sum := sha256.Sum256([]byte(norm))
	return appealCachePrefix + hex.EncodeToString(sum[:12])
}
