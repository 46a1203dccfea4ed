package web

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// handleDispatch runs the reminder sweep. The caller (an external cron
// trigger) must present the configured shared secret as a bearer token; a
// mismatch rejects the whole invocation before any work happens.
func (s *Server) handleDispatch(c *gin.Context) {
	if !s.cronAuthorized(c.GetHeader("Authorization")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := s.dispatch.Run(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "dispatch run failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process reminders"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) cronAuthorized(header string) bool {
	// An unset secret disables the endpoint rather than opening it.
	if s.cfg.CronSecret == "" {
		return false
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.CronSecret)) == 1
}
