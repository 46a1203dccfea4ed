package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/notes"
	"github.com/rashii/rashii/internal/server/services"
)

type createNoteRequest struct {
	Title      *string  `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Type       *string  `json:"type"`
	TargetDate *string  `json:"targetDate"`
}

func (s *Server) listNotes(c *gin.Context) {
	result, err := s.notes.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing notes failed", "err", err)
		c.JSON(http.StatusOK, []*models.Note{})
		return
	}
	if result == nil {
		result = []*models.Note{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	session := currentSession(c)
	note, err := s.notes.Create(c.Request.Context(), session.UserID, services.NoteCreate{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Type:       req.Type,
		TargetDate: req.TargetDate,
	})
	if err != nil {
		s.respondError(c, err, "Failed to create note")
		return
	}

	c.JSON(http.StatusOK, note)
}

func (s *Server) updateNote(c *gin.Context) {
	var upd notes.Update
	if err := decodeStrict(c, &upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if err := s.notes.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		s.respondError(c, err, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) deleteNote(c *gin.Context) {
	if err := s.notes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err, "Failed to delete note")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
