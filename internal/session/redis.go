package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"kapda-dekho/internal/cache"

	"github.com/redis/go-redis/v9"
)

// randRead 供測試覆寫
var randRead = rand.Read

// RedisStore 伺服器端 session 儲存
// token 為 32 bytes 亂數的 base64url 字串，對應 key session:<token> 存使用者 ID
type RedisStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisStore(c cache.Cache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: c, ttl: ttl}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) Issue(ctx context.Context, userID int) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	if err := s.cache.Set(ctx, sessionKey(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (int, error) {
	userID, err := s.cache.Get(ctx, sessionKey(token)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("Resolve: %w", err)
	}
	return userID, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.cache.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("Revoke: %w", err)
	}
	return nil
}
