package middleware

import (
	"context"
	"net/http"
	"strings"

	"Social_Forum/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// SessionChecker 校验 token 是否为该用户最近一次登录签发的
type SessionChecker interface {
	Get(ctx context.Context, userID uint64) (string, error)
	Extend(ctx context.Context, userID uint64) error
}

// OptionalAuth 没有 Authorization 头时放行；带了就必须合法
func OptionalAuth(tokens *pkg.TokenManager, sessions SessionChecker) gin.HandlerFunc {
	return authenticate(tokens, sessions, false)
}

func RequireAuth(tokens *pkg.TokenManager, sessions SessionChecker) gin.HandlerFunc {
	return authenticate(tokens, sessions, true)
}

func authenticate(tokens *pkg.TokenManager, sessions SessionChecker, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
				return
			}
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		tokenStr := parts[1]
		claims, err := tokens.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if sessions != nil {
			ctx := c.Request.Context()
			current, err := sessions.Get(ctx, claims.UserID)
			if err != nil || current != tokenStr {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or logged in elsewhere"})
				return
			}
			// 校验通过后更新过期时间
			if err := sessions.Extend(ctx, claims.UserID); err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session refresh failed"})
				return
			}
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID 返回 token 中的用户 id，未认证时 ok 为 false
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
