package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	LikeCntTTL       = 10 * time.Minute
	LikeCntKeyPrefix = "like:cnt:post" // 缓存某个帖子的点赞计数
	LikeVerKeyPrefix = "like:ver:post" // 计数版本号，每次点赞/取消加一
)

// LikeCountCache 点赞数读穿缓存；写路径删除计数并递增版本，
// 读侧回填时版本号已变化则放弃写入，避免旧值覆盖
type LikeCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLikeCountCache(client *redis.Client) *LikeCountCache {
	return &LikeCountCache{client: client, ttl: LikeCntTTL}
}

func (c *LikeCountCache) key(postID uint64) string {
	return fmt.Sprintf("%s:%d", LikeCntKeyPrefix, postID)
}

func (c *LikeCountCache) verKey(postID uint64) string {
	return fmt.Sprintf("%s:%d", LikeVerKeyPrefix, postID)
}

// Get 第二个返回值表示是否命中
func (c *LikeCountCache) Get(ctx context.Context, postID uint64) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.key(postID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

// Version 回源查库之前先取版本号，不存在视为 0
func (c *LikeCountCache) Version(ctx context.Context, postID uint64) (int64, error) {
	v, err := c.client.Get(ctx, c.verKey(postID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Set 仅当版本号仍等于 version 时写入；期间有过点赞变更则静默放弃
func (c *LikeCountCache) Set(ctx context.Context, postID uint64, count, version int64) error {
	verKey := c.verKey(postID)
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, verKey).Int64()
		if errors.Is(err, redis.Nil) {
			cur, err = 0, nil
		}
		if err != nil {
			return err
		}
		if cur != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(postID), count, c.ttl)
			return nil
		})
		return err
	}, verKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *LikeCountCache) Invalidate(ctx context.Context, postID uint64) error {
	verKey := c.verKey(postID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, verKey)
		pipe.Expire(ctx, verKey, c.ttl)
		pipe.Del(ctx, c.key(postID))
		return nil
	})
	return err
}
