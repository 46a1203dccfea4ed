package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashii/rashii/internal/server/models"
)

type createPromiseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
}

type updatePromiseRequest struct {
	Status *string `json:"status"`
}

func (s *Server) listPromises(c *gin.Context) {
	result, err := s.promises.List(c.Request.Context())
	if err != nil {
		// Reads stay non-blocking: a store failure renders as an empty list.
		s.logger.Error(c.Request.Context(), "listing promises failed", "err", err)
		c.JSON(http.StatusOK, []*models.Promise{})
		return
	}
	if result == nil {
		result = []*models.Promise{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) getPromise(c *gin.Context) {
	promise, err := s.promises.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err, "Failed to get promise")
		return
	}
	c.JSON(http.StatusOK, promise)
}

func (s *Server) createPromise(c *gin.Context) {
	var req createPromiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	session := currentSession(c)
	promise, err := s.promises.Create(c.Request.Context(), session.UserID, req.Title, req.Description, req.DueDate)
	if err != nil {
		s.respondError(c, err, "Failed to create promise")
		return
	}

	c.JSON(http.StatusOK, promise)
}

func (s *Server) updatePromise(c *gin.Context) {
	var req updatePromiseRequest
	if err := decodeStrict(c, &req); err != nil || req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	session := currentSession(c)
	if err := s.promises.SetStatus(c.Request.Context(), session.UserID, c.Param("id"), *req.Status); err != nil {
		s.respondError(c, err, "Failed to update promise")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) deletePromise(c *gin.Context) {
	if err := s.promises.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err, "Failed to delete promise")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
