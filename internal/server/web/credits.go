package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashii/rashii/internal/server/models"
)

type createCreditRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OwedBy      string `json:"owedBy"`
}

type updateCreditRequest struct {
	Status *string `json:"status"`
}

func (s *Server) listCredits(c *gin.Context) {
	result, err := s.credits.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing credits failed", "err", err)
		c.JSON(http.StatusOK, []*models.Credit{})
		return
	}
	if result == nil {
		result = []*models.Credit{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createCredit(c *gin.Context) {
	var req createCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and owedBy are required"})
		return
	}

	session := currentSession(c)
	credit, err := s.credits.Create(c.Request.Context(), session.UserID, req.Title, req.Description, req.OwedBy)
	if err != nil {
		s.respondError(c, err, "Failed to create credit")
		return
	}

	c.JSON(http.StatusOK, credit)
}

func (s *Server) updateCredit(c *gin.Context) {
	var req updateCreditRequest
	if err := decodeStrict(c, &req); err != nil || req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := s.credits.SetStatus(c.Request.Context(), c.Param("id"), *req.Status); err != nil {
		s.respondError(c, err, "Failed to update credit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) deleteCredit(c *gin.Context) {
	if err := s.credits.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err, "Failed to delete credit")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
