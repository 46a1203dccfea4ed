package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the browser cookie carrying the session payload.
const SessionCookieName = "rashii_session"

const sessionContextKey = "session"

// Session is the cookie payload identifying the logged-in user. It is not
// signed: trust lives entirely in transport security and cookie scoping,
// and logout is nothing more than deleting the cookie client-side.
type Session struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	LoginTime int64  `json:"loginTime"`
}

// encodeSession serializes the session for the cookie value. Base64url
// keeps the JSON clear of characters a cookie value cannot carry.
func encodeSession(s Session) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeSession(value string) (Session, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (s *Server) setSessionCookie(c *gin.Context, session Session) error {
	value, err := encodeSession(session)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	// MaxAge 0: browser-session lifetime, no Max-Age attribute.
	c.SetCookie(SessionCookieName, value, 0, "/", "", s.cfg.Production(), true)
	return nil
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", s.cfg.Production(), true)
}

// requireSession gates mutations: the request must carry a parseable
// session cookie naming a configured user. Validation is presence and
// parse-ability only; there is no server-side session store to consult.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := decodeSession(value)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, ok := s.registry.Get(session.UserID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// currentSession returns the session stored by requireSession.
func currentSession(c *gin.Context) Session {
	v, _ := c.Get(sessionContextKey)
	session, _ := v.(Session)
	return session
}
