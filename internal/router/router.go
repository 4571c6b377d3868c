package router

import (
	"log/slog"
	"net/http"

	"Social_Forum/internal/handler"
	"Social_Forum/internal/middleware"
	"Social_Forum/internal/pkg"
	"Social_Forum/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Log      *slog.Logger
	Tokens   *pkg.TokenManager
	Sessions middleware.SessionChecker // 可为 nil

	Users    *service.UserService
	Posts    *service.PostService
	Comments *service.CommentService
	Replies  *service.ReplyService
	Likes    *service.LikeService
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log), middleware.Metrics())

	user := handler.NewUserHandler(d.Users)
	post := handler.NewPostHandler(d.Posts)
	comment := handler.NewCommentHandler(d.Comments)
	reply := handler.NewReplyHandler(d.Replies)
	like := handler.NewLikeHandler(d.Likes)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running!")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 用户相关接口
	r.POST("/register", user.Register)
	r.POST("/login", user.Login)
	r.POST("/token/refresh", user.TokenRefresh)
	r.POST("/logout", middleware.RequireAuth(d.Tokens, d.Sessions), user.Logout)

	// 内容接口：带 token 时以 token 中的用户为准
	content := r.Group("/")
	content.Use(middleware.OptionalAuth(d.Tokens, d.Sessions))
	{
		content.POST("/posts", post.CreatePost)
		content.GET("/posts", post.ListPosts)

		content.POST("/comments", comment.CreateComment)
		content.GET("/comments/:post_id", comment.ListComments)

		content.POST("/replies", reply.CreateReply)
		content.GET("/replies/:comment_id", reply.ListReplies)

		content.POST("/likes", like.ToggleLike)
		content.GET("/likes/:post_id", like.CountLikes)
	}

	return r
}
