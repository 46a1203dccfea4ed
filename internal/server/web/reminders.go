package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rashii/rashii/internal/server/models"
	"github.com/rashii/rashii/internal/server/repositories/reminders"
)

type createReminderRequest struct {
	Title       string    `json:"title"`
	Datetime    time.Time `json:"datetime"`
	Recurrence  *string   `json:"recurrence"`
	EmailNotify *bool     `json:"emailNotify"`
}

func (s *Server) listReminders(c *gin.Context) {
	result, err := s.reminders.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing reminders failed", "err", err)
		c.JSON(http.StatusOK, []*models.Reminder{})
		return
	}
	if result == nil {
		result = []*models.Reminder{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) createReminder(c *gin.Context) {
	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and datetime are required"})
		return
	}

	session := currentSession(c)
	reminder, err := s.reminders.Create(c.Request.Context(), session.UserID, req.Title, req.Datetime, req.Recurrence, req.EmailNotify)
	if err != nil {
		s.respondError(c, err, "Failed to create reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (s *Server) updateReminder(c *gin.Context) {
	var upd reminders.Update
	if err := decodeStrict(c, &upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if err := s.reminders.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		s.respondError(c, err, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) deleteReminder(c *gin.Context) {
	if err := s.reminders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err, "Failed to delete reminder")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
