package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type postRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (s *HTTPServer) createPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := s.posts.Create(c.Request.Context(), c.GetString(userIDKey), req.Title, req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (s *HTTPServer) listPosts(c *gin.Context) {
	posts, err := s.posts.GetAll(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (s *HTTPServer) listOwnPosts(c *gin.Context) {
	posts, err := s.posts.GetBySender(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (s *HTTPServer) getPost(c *gin.Context) {
	post, err := s.posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (s *HTTPServer) updatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := s.posts.Update(c.Request.Context(), c.Param("id"), c.GetString(userIDKey), req.Title, req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
