package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/errors"
)

const (
	SessionIDHeader = "X-Session-ID"
	sessionIDKey    = "session_id"
	sessionKey      = "session"
)

type SessionMiddleware struct {
	sessions service.SessionService
}

func NewSessionMiddleware(sessions service.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession resolves the shopper session named by X-Session-ID. The
// session ID may also come from the "session" query parameter for links
// such as receipt downloads.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		id := strings.TrimSpace(c.GetHeader(SessionIDHeader))
		if id == "" {
			id = strings.TrimSpace(c.Query("session"))
		}
		if id == "" {
			log.Warn("Missing session header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.BadRequest(c, errors.SessionRequired, "Start a session first")
			c.Abort()
			return
		}

		session, err := m.sessions.Get(id)
		if err != nil {
			log.Warn("Unknown session", map[string]interface{}{
				"path":       c.Request.URL.Path,
				"session_id": id,
			})
			errors.RespondWithError(c, http.StatusNotFound, errors.SessionNotFound, "Your session has expired. Please start again")
			c.Abort()
			return
		}

		c.Set(sessionIDKey, session.ID)
		c.Set(sessionKey, session)
		c.Next()
	}
}

// GetSession returns the session resolved by RequireSession.
func GetSession(c *gin.Context) (*service.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*service.Session)
	return session, ok
}
