package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "ranking:"

// Redis is a Cache shared by all instances of the API.
//
// Each month and order is one key with its own TTL. Invalidating a
// month deletes the keys of both orders.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Cache = (*Redis)(nil)

// NewRedis connects to the server and checks the connection.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration) (*Redis, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info().Str("addr", addr).Int("db", db).Msg("connected to Redis")
	return &Redis{client: client, ttl: ttl}, nil
}

var orders = []store.Order{store.OrderDescending, store.OrderAscending}

func key(month types.Month, order store.Order) string {
	return keyPrefix + month.String() + ":" + string(order)
}

func (r *Redis) Name() string {
	return "redis"
}

func (r *Redis) Get(ctx context.Context, month types.Month, order store.Order) ([]models.RankingEntry, bool, error) {
	raw, err := r.client.Get(ctx, key(month, order)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	var entries []models.RankingEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("cached ranking for %s is corrupt: %w", month, err)
	}

	return entries, true, nil
}

func (r *Redis) Set(ctx context.Context, month types.Month, order store.Order, entries []models.RankingEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key(month, order), raw, r.ttl).Err()
}

func (r *Redis) Invalidate(ctx context.Context, month types.Month) error {
	keys := make([]string, 0, len(orders))
	for _, o := range orders {
		keys = append(keys, key(month, o))
	}

	return r.client.Del(ctx, keys...).Err()
}

// Flush deletes all ranking keys.
func (r *Redis) Flush(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return r.client.Del(ctx, keys...).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
