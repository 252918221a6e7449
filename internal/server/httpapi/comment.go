package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createCommentRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type updateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *HTTPServer) createComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := s.comments.Create(c.Request.Context(), c.GetString(userIDKey), req.PostID, req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (s *HTTPServer) listComments(c *gin.Context) {
	comments, err := s.comments.GetAll(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (s *HTTPServer) listPostComments(c *gin.Context) {
	comments, err := s.comments.GetByPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (s *HTTPServer) updateComment(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := s.comments.Update(c.Request.Context(), c.Param("id"), c.GetString(userIDKey), req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (s *HTTPServer) deleteComment(c *gin.Context) {
	if err := s.comments.Delete(c.Request.Context(), c.Param("id"), c.GetString(userIDKey)); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
