package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Social_Forum/internal/config"
	"Social_Forum/internal/middleware"
	"Social_Forum/internal/pkg"
	"Social_Forum/internal/repository/mysql"
	"Social_Forum/internal/repository/redis"
	"Social_Forum/internal/router"
	"Social_Forum/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// run 返回时所有 defer 已执行，连接都已关闭
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := pkg.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := mysql.Open(cfg.DSN(), mysql.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect mysql: %w", err)
	}
	defer func() {
		if err := mysql.Close(db); err != nil {
			log.Error("close mysql", "error", err)
		}
	}()

	// 自动建表（开发阶段 OK）
	if cfg.DBAutoMigrate {
		if err := mysql.Migrate(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	// 接口变量保持为 nil，不能传入 nil 指针
	var (
		likeCache      service.LikeCounter
		sessionStore   service.SessionStore
		sessionChecker middleware.SessionChecker
	)
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		sessions := redis.NewSessionRepository(rdb)
		likeCache = redis.NewLikeCountCache(rdb)
		sessionStore = sessions
		sessionChecker = sessions
	} else {
		log.Info("redis disabled, like counts uncached and sessions not tracked")
	}

	var publisher service.Publisher
	if brokers := cfg.Brokers(); len(brokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: brokers, Topic: cfg.KafkaTopic})
		if err != nil {
			return fmt.Errorf("create kafka producer: %w", err)
		}
		defer producer.Close()
		publisher = producer
	}

	tokens := pkg.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)
	// 先于 producer 关闭，排空队列中的事件
	events := service.NewEmitter(publisher, log)
	defer events.Close()

	r := router.InitRouter(router.Deps{
		Log:      log,
		Tokens:   tokens,
		Sessions: sessionChecker,
		Users: service.NewUserService(mysql.NewUserRepository(db), sessionStore, tokens, service.UserServiceConfig{
			BcryptCost:          cfg.BcryptCost,
			IncludePasswordHash: cfg.LoginIncludePasswordHash,
		}, log),
		Posts:    service.NewPostService(mysql.NewPostRepository(db), events),
		Comments: service.NewCommentService(mysql.NewCommentRepository(db), events),
		Replies:  service.NewReplyService(mysql.NewReplyRepository(db), events),
		Likes:    service.NewLikeService(mysql.NewLikeRepository(db), likeCache, events, log),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, srv, log)
}

// serve 阻塞到 ctx 结束后优雅关闭；监听失败时直接返回错误
func serve(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
