package handler

import (
	"net/http"
	"strconv"

	"Social_Forum/internal/middleware"

	"github.com/gin-gonic/gin"
)

// actingUser token 中的用户优先，匿名请求沿用请求体里的 user_id
func actingUser(c *gin.Context, bodyUserID uint64) uint64 {
	if uid, ok := middleware.UserID(c); ok {
		return uid
	}
	return bodyUserID
}

// idParam 解析路径中的数字 id，失败时已写好 400 响应
func idParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func badParams(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
}

// serverError 原始错误只进日志，客户端拿到固定文案
func serverError(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
