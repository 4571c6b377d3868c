package handler

import (
	"net/http"

	"Social_Forum/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

type CreateCommentReq struct {
	PostID  uint64 `json:"post_id"`
	UserID  uint64 `json:"user_id"`
	Content string `json:"content"`
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParams(c, err)
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), req.PostID, actingUser(c, req.UserID), req.Content)
	if err != nil {
		serverError(c, err, "Failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"comment_id": comment.CommentID,
		"post_id":    comment.PostID,
		"content":    comment.Content,
		"created_at": comment.CreatedAt,
		"username":   comment.Username,
	})
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := idParam(c, "post_id")
	if !ok {
		return
	}

	list, err := h.svc.ListComments(c.Request.Context(), postID)
	if err != nil {
		serverError(c, err, "Error fetching comments")
		return
	}
	c.JSON(http.StatusOK, list)
}
