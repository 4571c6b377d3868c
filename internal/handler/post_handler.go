package handler

import (
	"net/http"

	"Social_Forum/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	UserID  uint64 `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// CreatePost 创建帖子接口
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParams(c, err)
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), actingUser(c, req.UserID), req.Title, req.Content)
	if err != nil {
		serverError(c, err, "Error creating post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Post created successfully",
		"post_id":    post.PostID,
		"title":      post.Title,
		"content":    post.Content,
		"created_at": post.CreatedAt,
		"username":   post.Username,
	})
}

// ListPosts 全部帖子，新的在前
func (h *PostHandler) ListPosts(c *gin.Context) {
	list, err := h.svc.ListPosts(c.Request.Context())
	if err != nil {
		serverError(c, err, "Error fetching posts")
		return
	}
	c.JSON(http.StatusOK, list)
}
