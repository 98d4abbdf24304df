// Package cache keeps recently formatted answers so repeated questions skip
// retrieval and generation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

// ErrMiss is returned when no answer is cached under a key
var ErrMiss = errors.New("cache miss")

// DefaultTTL applies when the configured TTL is not positive
const DefaultTTL = 10 * time.Minute

const keyPrefix = "itpf:answer:"

// answerNamespace seeds the deterministic question IDs
var answerNamespace = uuid.MustParse("6f1c2a59-7d1e-4c86-9b0e-3a5d8f2e41c7")

// Entry is a cached answer together with where its body came from
type Entry struct {
	Answer     models.FormattedAnswer  `json:"answer"`
	Analysis   models.QuestionAnalysis `json:"analysis"`
	Supporting []models.CitedEntry     `json:"supporting"`
	Source     models.AnswerSource     `json:"source"`
	Provider   string                  `json:"provider,omitempty"`
	CachedAt   time.Time               `json:"cached_at"`
}

// AnswerCache stores answers by question key
type AnswerCache interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry) error
}

// QuestionID derives a stable ID for a question, language and generation flag.
// Case, surrounding space and digit script do not change the ID.
func QuestionID(question string, lang models.Language, useAI bool) uuid.UUID {
	q := strings.Join(strings.Fields(analysis.Normalize(question)), " ")
	return uuid.NewSHA1(answerNamespace, []byte(fmt.Sprintf("%s|%t|%s", lang, useAI, q)))
}

// Key is the cache key for a question ID answered from one corpus version.
// A reloaded corpus with new content never serves answers from the old one.
func Key(id uuid.UUID, corpusVersion string) string {
	return keyPrefix + corpusVersion + ":" + id.String()
}

// RedisCache keeps answers in Redis as JSON with a TTL
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisCacheWithClient(client, ttl), nil
}

// NewRedisCacheWithClient wraps an existing client
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached entry or ErrMiss
func (r *RedisCache) Get(ctx context.Context, key string) (*Entry, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached answer: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode cached answer: %w", err)
	}
	return &entry, nil
}

// Set stores the entry for the configured TTL
func (r *RedisCache) Set(ctx context.Context, key string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode answer: %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache answer: %w", err)
	}
	return nil
}

// Close releases the Redis connection pool
func (r *RedisCache) Close() error {
	return r.client.Close()
}
