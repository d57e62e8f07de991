package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "zapysnyk:session:"

// RedisStore — каталог сессий в Redis. Сессии хранятся как JSON без TTL,
// что позволяет нескольким воркерам бота разделять состояние диалогов.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient создаёт клиент Redis.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Ping проверяет соединение с Redis.
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(userID int64) string {
	return redisKeyPrefix + strconv.FormatInt(userID, 10)
}

func (s *RedisStore) Get(ctx context.Context, userID int64) (*Session, error) {
	data, err := s.client.Get(ctx, redisKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", userID, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session %d: %w", userID, err)
	}
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", sess.UserID, err)
	}
	if err := s.client.Set(ctx, redisKey(sess.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("set session %d: %w", sess.UserID, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, redisKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear session %d: %w", userID, err)
	}
	return nil
}
