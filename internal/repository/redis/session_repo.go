package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
)

const (
	UserTokenPrefix   = "login:user:token"
	UserTokenExpire   = 30 * time.Minute
	UserRefreshPrefix = "login:user:refresh"
	UserRefreshExpire = 24 * time.Hour
)

// SessionRepository 每个用户只保留最近一次签发的 access 与 refresh
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) key(userID uint64) string {
	return fmt.Sprintf("%s:%d", UserTokenPrefix, userID)
}

func (r *SessionRepository) refreshKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", UserRefreshPrefix, userID)
}

// Save 覆盖旧的一对 token，之前签发的 access 和 refresh 随之失效
func (r *SessionRepository) Save(ctx context.Context, userID uint64, access, refresh string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(userID), access, UserTokenExpire)
		pipe.Set(ctx, r.refreshKey(userID), refresh, UserRefreshExpire)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, userID uint64) (string, error) {
	return r.get(ctx, r.key(userID))
}

func (r *SessionRepository) GetRefresh(ctx context.Context, userID uint64) (string, error) {
	return r.get(ctx, r.refreshKey(userID))
}

func (r *SessionRepository) get(ctx context.Context, key string) (string, error) {
	token, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return token, nil
}

// Extend 校验通过后续期
func (r *SessionRepository) Extend(ctx context.Context, userID uint64) error {
	if err := r.client.Expire(ctx, r.key(userID), UserTokenExpire).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID uint64) error {
	if err := r.client.Del(ctx, r.key(userID), r.refreshKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
