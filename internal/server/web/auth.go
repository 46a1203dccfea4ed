package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	UserID string `json:"userId"`
	Pin    string `json:"pin"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credentials"})
		return
	}
	if req.UserID == "" || req.Pin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credentials"})
		return
	}

	user, err := s.auth.Login(c.Request.Context(), req.UserID, req.Pin)
	if err != nil {
		s.respondError(c, err, "Authentication failed")
		return
	}

	session := Session{
		UserID:    user.ID,
		Name:      user.Name,
		LoginTime: time.Now().UnixMilli(),
	}
	if err := s.setSessionCookie(c, session); err != nil {
		s.respondError(c, err, "Authentication failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"id": user.ID, "name": user.Name},
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
