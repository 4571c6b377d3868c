package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestLikeCountCache(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewLikeCountCache(client)
	ctx := context.Background()

	_, hit, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, 1, 12, 0))
	v, hit, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(12), v)
	assert.Equal(t, LikeCntTTL, mr.TTL("like:cnt:post:1"))

	require.NoError(t, cache.Invalidate(ctx, 1))
	_, hit, err = cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)

	// 删除不存在的 key 不报错
	require.NoError(t, cache.Invalidate(ctx, 2))
}

func TestLikeCountCache_Expiry(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewLikeCountCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 3, 1, 0))
	mr.FastForward(LikeCntTTL + time.Second)

	_, hit, err := cache.Get(ctx, 3)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestLikeCountCache_StaleBackfillIsDiscarded(t *testing.T) {
	_, client := setupMiniredis(t)
	cache := NewLikeCountCache(client)
	ctx := context.Background()

	// 读侧取到版本后查库，此时另一个请求完成了点赞并删缓存
	ver, err := cache.Version(ctx, 5)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx, 5))

	require.NoError(t, cache.Set(ctx, 5, 0, ver))
	_, hit, err := cache.Get(ctx, 5)
	require.NoError(t, err)
	assert.False(t, hit, "count read before the toggle must not be cached")

	ver, err = cache.Version(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ver)
	require.NoError(t, cache.Set(ctx, 5, 1, ver))
	v, hit, err := cache.Get(ctx, 5)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(1), v)
}

func TestSessionRepository(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	_, err := repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, repo.Save(ctx, 1, "tok", "ref"))
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "tok", got)
	ref, err := repo.GetRefresh(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ref", ref)
	assert.Equal(t, UserRefreshExpire, mr.TTL("login:user:refresh:1"))

	mr.FastForward(UserTokenExpire - time.Minute)
	require.NoError(t, repo.Extend(ctx, 1))
	assert.Equal(t, UserTokenExpire, mr.TTL("login:user:token:1"))

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrTokenNotFound)
	_, err = repo.GetRefresh(ctx, 1)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestSessionRepository_SaveReplacesPair(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 2, "a1", "r1"))
	require.NoError(t, repo.Save(ctx, 2, "a2", "r2"))

	got, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "a2", got)
	ref, err := repo.GetRefresh(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "r2", ref)
}
