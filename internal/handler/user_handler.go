package handler

import (
	"errors"
	"net/http"

	"Social_Forum/internal/middleware"
	"Social_Forum/internal/pkg"
	"Social_Forum/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

type CredentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 注册接口
func (h *UserHandler) Register(c *gin.Context) {
	var req CredentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParams(c, err)
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		serverError(c, err, "Error registering user")
		return
	}

	c.String(http.StatusCreated, "User registered successfully!")
}

// Login 登录接口
func (h *UserHandler) Login(c *gin.Context) {
	var req CredentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParams(c, err)
		return
	}

	res, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		serverError(c, err, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          res.User,
		"access_token":  res.Tokens.AccessToken,
		"refresh_token": res.Tokens.RefreshToken,
	})
}

// TokenRefresh 利用 refresh 来更新 access
func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badParams(c, err)
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrSessionRevoked) ||
			errors.Is(err, pkg.ErrRefreshInvalid) ||
			errors.Is(err, pkg.ErrRefreshExpired) {
			_ = c.Error(err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		serverError(c, err, "Error refreshing token")
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *UserHandler) Logout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.svc.Logout(c.Request.Context(), userID); err != nil {
		serverError(c, err, "Error logging out")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
