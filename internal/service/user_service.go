package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"Social_Forum/internal/model"
	"Social_Forum/internal/pkg"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionRevoked     = errors.New("session revoked")
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// SessionStore 可选；配置后每个用户只有最近一次签发的一对 token 有效
type SessionStore interface {
	Save(ctx context.Context, userID uint64, access, refresh string) error
	GetRefresh(ctx context.Context, userID uint64) (string, error)
	Delete(ctx context.Context, userID uint64) error
}

type UserServiceConfig struct {
	BcryptCost int
	// IncludePasswordHash 登录结果是否保留密码哈希
	IncludePasswordHash bool
}

type UserService struct {
	repo     UserStore
	sessions SessionStore
	tokens   *pkg.TokenManager
	cfg      UserServiceConfig
	log      *slog.Logger

	// 用户不存在时也做一次比对，避免通过耗时区分用户名是否存在
	dummyHash []byte
}

type LoginResult struct {
	User   model.User
	Tokens *pkg.Pair
}

func NewUserService(repo UserStore, sessions SessionStore, tokens *pkg.TokenManager, cfg UserServiceConfig, log *slog.Logger) *UserService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = slog.Default()
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("dummy-password"), cfg.BcryptCost)
	return &UserService{
		repo:      repo,
		sessions:  sessions,
		tokens:    tokens,
		cfg:       cfg,
		log:       log,
		dummyHash: dummy,
	}
}

func (s *UserService) Register(ctx context.Context, username, password string) (uint64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return 0, fmt.Errorf("create user %q: %w", username, err)
	}
	s.log.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user.ID, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.tokens.GeneratePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	if s.sessions != nil {
		if err := s.sessions.Save(ctx, user.ID, tokens.AccessToken, tokens.RefreshToken); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}

	out := *user
	if !s.cfg.IncludePasswordHash {
		out = out.Redacted()
	}
	return &LoginResult{User: out, Tokens: tokens}, nil
}

// Refresh 利用 refresh 换新的一对 token。
// 配置了会话时 refresh 必须是最近签发的那个，用过即作废；登出后同样失效。
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*pkg.Pair, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}
	if s.sessions != nil {
		current, err := s.sessions.GetRefresh(ctx, claims.UserID)
		if err != nil || current != refreshToken {
			return nil, ErrSessionRevoked
		}
	}

	pair, err := s.tokens.GeneratePair(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	if s.sessions != nil {
		if err := s.sessions.Save(ctx, claims.UserID, pair.AccessToken, pair.RefreshToken); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}
	return pair, nil
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	if s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(ctx, userID)
}
