// Package seed fills a development database with demo data. Everything goes
// through the service layer so seeded rows look exactly like API-created ones.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"Social_Forum/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

const DefaultPassword = "password123"

type Options struct {
	Users             int
	PostsPerUser      int
	CommentsPerPost   int
	RepliesPerComment int
	// LikeChance 每个用户给每篇帖子点赞的概率，0~100
	LikeChance int
	// RandSeed 为 0 时使用随机种子
	RandSeed int64
}

type Summary struct {
	Users    int
	Posts    int
	Comments int
	Replies  int
	Likes    int
}

type Seeder struct {
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
	replies  *service.ReplyService
	likes    *service.LikeService
	log      *slog.Logger
}

func NewSeeder(users *service.UserService, posts *service.PostService, comments *service.CommentService,
	replies *service.ReplyService, likes *service.LikeService, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{users: users, posts: posts, comments: comments, replies: replies, likes: likes, log: log}
}

func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	f := gofakeit.New(opts.RandSeed)
	sum := &Summary{}

	userIDs := make([]uint64, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		// 序号后缀保证用户名唯一
		name := fmt.Sprintf("%s%d", f.Username(), i)
		if len(name) > 32 {
			name = name[len(name)-32:]
		}
		id, err := s.users.Register(ctx, name, DefaultPassword)
		if err != nil {
			return sum, fmt.Errorf("register %s: %w", name, err)
		}
		userIDs = append(userIDs, id)
		sum.Users++
	}
	if len(userIDs) == 0 {
		return sum, nil
	}

	pick := func() uint64 { return userIDs[f.Number(0, len(userIDs)-1)] }

	var postIDs []uint64
	for _, author := range userIDs {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := s.posts.CreatePost(ctx, author, f.Sentence(5), f.Paragraph(1, 3, 8, "\n"))
			if err != nil {
				return sum, fmt.Errorf("create post: %w", err)
			}
			postIDs = append(postIDs, post.PostID)
			sum.Posts++
		}
	}

	for _, postID := range postIDs {
		for i := 0; i < opts.CommentsPerPost; i++ {
			comment, err := s.comments.CreateComment(ctx, postID, pick(), f.Sentence(12))
			if err != nil {
				return sum, fmt.Errorf("create comment on post %d: %w", postID, err)
			}
			sum.Comments++

			for j := 0; j < opts.RepliesPerComment; j++ {
				if _, err := s.replies.CreateReply(ctx, comment.CommentID, pick(), f.Sentence(8)); err != nil {
					return sum, fmt.Errorf("create reply on comment %d: %w", comment.CommentID, err)
				}
				sum.Replies++
			}
		}

		// 每个 (帖子, 用户) 只切换一次，结果一定是点赞
		for _, uid := range userIDs {
			if f.Number(1, 100) > opts.LikeChance {
				continue
			}
			if _, err := s.likes.ToggleLike(ctx, postID, uid); err != nil {
				return sum, fmt.Errorf("like post %d: %w", postID, err)
			}
			sum.Likes++
		}
	}

	s.log.InfoContext(ctx, "seed finished",
		"users", sum.Users, "posts", sum.Posts, "comments", sum.Comments,
		"replies", sum.Replies, "likes", sum.Likes)
	return sum, nil
}
