package handler

import (
	"net/http"

	"Social_Forum/internal/service"

	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	svc *service.ReplyService
}

type CreateReplyReq struct {
	CommentID uint64 `json:"comment_id"`
	UserID    uint64 `json:"user_id"`
	Content   string `json:"content"`
}

func NewReplyHandler(svc *service.ReplyService) *ReplyHandler {
	return &ReplyHandler{svc: svc}
}

func (h *ReplyHandler) CreateReply(c *gin.Context) {
	var req CreateReplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badParams(c, err)
		return
	}

	reply, err := h.svc.CreateReply(c.Request.Context(), req.CommentID, actingUser(c, req.UserID), req.Content)
	if err != nil {
		serverError(c, err, "Error adding reply")
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// ListReplies 回复按时间正序
func (h *ReplyHandler) ListReplies(c *gin.Context) {
	commentID, ok := idParam(c, "comment_id")
	if !ok {
		return
	}

	list, err := h.svc.ListReplies(c.Request.Context(), commentID)
	if err != nil {
		serverError(c, err, "Error fetching replies")
		return
	}
	c.JSON(http.StatusOK, list)
}
