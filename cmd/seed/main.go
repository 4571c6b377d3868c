// Command seed fills the forum database with demo users and content.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"Social_Forum/internal/config"
	"Social_Forum/internal/pkg"
	"Social_Forum/internal/repository/mysql"
	"Social_Forum/internal/seed"
	"Social_Forum/internal/service"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	postsPerUser := flag.Int("posts", 3, "Posts per user")
	commentsPerPost := flag.Int("comments", 4, "Comments per post")
	repliesPerComment := flag.Int("replies", 2, "Replies per comment")
	likeChance := flag.Int("like-chance", 30, "Chance (0-100) that a user likes a post")
	randSeed := flag.Int64("seed", 0, "Random seed, 0 for random")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	log := pkg.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	db, err := mysql.Open(cfg.DSN(), mysql.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Error("connect mysql", "error", err)
		os.Exit(1)
	}
	defer mysql.Close(db)

	if err := mysql.Migrate(db); err != nil {
		log.Error("auto migrate", "error", err)
		os.Exit(1)
	}

	// 种子数据不发事件、不走缓存
	tokens := pkg.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	s := seed.NewSeeder(
		service.NewUserService(mysql.NewUserRepository(db), nil, tokens, service.UserServiceConfig{BcryptCost: cfg.BcryptCost}, log),
		service.NewPostService(mysql.NewPostRepository(db), nil),
		service.NewCommentService(mysql.NewCommentRepository(db), nil),
		service.NewReplyService(mysql.NewReplyRepository(db), nil),
		service.NewLikeService(mysql.NewLikeRepository(db), nil, nil, log),
		log,
	)

	sum, err := s.Run(context.Background(), seed.Options{
		Users:             *numUsers,
		PostsPerUser:      *postsPerUser,
		CommentsPerPost:   *commentsPerPost,
		RepliesPerComment: *repliesPerComment,
		LikeChance:        *likeChance,
		RandSeed:          *randSeed,
	})
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("all done", "users", sum.Users, "password", seed.DefaultPassword)
}
