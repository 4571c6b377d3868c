package handler

import (
	"net/http"

	"Social_Forum/internal/middleware"
	"Social_Forum/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

type ToggleLikeReq struct {
	PostID uint64 `json:"post_id"`
	UserID uint64 `json:"user_id"`
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// ToggleLike 点赞 201，取消点赞 200
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	var req ToggleLikeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParams(c, err)
		return
	}

	res, err := h.svc.ToggleLike(c.Request.Context(), req.PostID, actingUser(c, req.UserID))
	if err != nil {
		serverError(c, err, "Error toggling like")
		return
	}

	if res == service.Liked {
		c.JSON(http.StatusCreated, gin.H{"message": "Post liked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post unliked"})
}

func (h *LikeHandler) CountLikes(c *gin.Context) {
	postID, ok := idParam(c, "post_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	n, err := h.svc.CountLikes(ctx, postID)
	if err != nil {
		serverError(c, err, "Error fetching likes")
		return
	}

	resp := gin.H{"likeCount": n}
	// 带 token 时额外返回当前用户是否已点赞
	if uid, ok := middleware.UserID(c); ok {
		liked, err := h.svc.IsLiked(ctx, postID, uid)
		if err != nil {
			serverError(c, err, "Error fetching likes")
			return
		}
		resp["liked"] = liked
	}
	c.JSON(http.StatusOK, resp)
}
