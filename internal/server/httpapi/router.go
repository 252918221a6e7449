package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	user := r.Group("/user")
	user.POST("/register", s.register)
	user.POST("/login", s.login)
	// Refresh and logout authenticate with the refresh token itself, not
	// with an access token.
	user.POST("/refreshToken", s.requireRefreshToken(), s.refreshToken)
	user.POST("/logout", s.requireRefreshToken(), s.logout)

	post := r.Group("/post")
	post.GET("", s.listPosts)
	post.GET("/:id", s.getPost)
	post.POST("", s.requireAccessToken(), s.createPost)
	post.GET("/user", s.requireAccessToken(), s.listOwnPosts)
	post.PUT("/:id", s.requireAccessToken(), s.updatePost)

	comment := r.Group("/comment")
	comment.GET("", s.listComments)
	comment.GET("/post/:postId", s.listPostComments)
	comment.POST("", s.requireAccessToken(), s.createComment)
	comment.PUT("/:id", s.requireAccessToken(), s.updateComment)
	comment.DELETE("/:id", s.requireAccessToken(), s.deleteComment)

	return r
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
