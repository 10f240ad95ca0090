package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "vetstock:session:"

// RedisStore persiste sesiones en Redis usando el TTL nativo de la key.
// A diferencia de un cache, un error de Redis se propaga: sin store no hay sesión válida.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient arma el cliente con la config de REDIS_*.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+sessionID, strconv.FormatInt(userID, 10), ttl).Err()
}

func (s *RedisStore) Lookup(ctx context.Context, sessionID string) (int64, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrSessionNotFound
	}
	return id, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, redisKeyPrefix+sessionID).Err()
}

// Ping verifica conectividad al arrancar.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
