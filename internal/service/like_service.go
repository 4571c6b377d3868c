package service

import (
	"context"
	"fmt"
	"log/slog"

	"Social_Forum/internal/pkg"
)

type ToggleResult string

const (
	Liked   ToggleResult = "liked"
	Unliked ToggleResult = "unliked"
)

type LikeStore interface {
	Toggle(ctx context.Context, postID, userID uint64) (bool, error)
	IsLiked(ctx context.Context, postID, userID uint64) (bool, error)
	Count(ctx context.Context, postID uint64) (int64, error)
}

// LikeCounter 点赞数缓存，可为 nil。
// Set 带回源前读到的版本号，版本已变化时实现应放弃写入。
type LikeCounter interface {
	Get(ctx context.Context, postID uint64) (int64, bool, error)
	Version(ctx context.Context, postID uint64) (int64, error)
	Set(ctx context.Context, postID uint64, count, version int64) error
	Invalidate(ctx context.Context, postID uint64) error
}

type LikeService struct {
	repo   LikeStore
	cache  LikeCounter
	events *Emitter
	log    *slog.Logger
}

func NewLikeService(repo LikeStore, cache LikeCounter, events *Emitter, log *slog.Logger) *LikeService {
	if log == nil {
		log = slog.Default()
	}
	return &LikeService{repo: repo, cache: cache, events: events, log: log}
}

// ToggleLike 已赞则取消，未赞则点赞；写库成功后删计数缓存，交给读侧回填
func (s *LikeService) ToggleLike(ctx context.Context, postID, userID uint64) (ToggleResult, error) {
	liked, err := s.repo.Toggle(ctx, postID, userID)
	if err != nil {
		return "", fmt.Errorf("toggle like: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, postID); err != nil {
			s.log.WarnContext(ctx, "invalidate like count", "post_id", postID, "error", err)
		}
	}

	result, evt := Unliked, EventPostUnliked
	if liked {
		result, evt = Liked, EventPostLiked
	}
	pkg.LikeTogglesTotal.WithLabelValues(string(result)).Inc()
	s.events.Emit(ctx, Event{Type: evt, PostID: postID, UserID: userID})
	return result, nil
}

func (s *LikeService) CountLikes(ctx context.Context, postID uint64) (int64, error) {
	backfill := false
	var version int64
	if s.cache != nil {
		v, hit, err := s.cache.Get(ctx, postID)
		if err != nil {
			s.log.WarnContext(ctx, "read like count cache", "post_id", postID, "error", err)
		} else if hit {
			return v, nil
		} else if version, err = s.cache.Version(ctx, postID); err != nil {
			s.log.WarnContext(ctx, "read like count version", "post_id", postID, "error", err)
		} else {
			backfill = true
		}
	}

	n, err := s.repo.Count(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}

	if backfill {
		if err := s.cache.Set(ctx, postID, n, version); err != nil {
			s.log.WarnContext(ctx, "fill like count cache", "post_id", postID, "error", err)
		}
	}
	return n, nil
}

// IsLiked 当前用户是否已点赞，直接查库
func (s *LikeService) IsLiked(ctx context.Context, postID, userID uint64) (bool, error) {
	liked, err := s.repo.IsLiked(ctx, postID, userID)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return liked, nil
}
