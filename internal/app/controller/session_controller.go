package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/winecraft-backend/internal/app/service"
	"github.com/ikkim/winecraft-backend/internal/errors"
	"github.com/ikkim/winecraft-backend/internal/middleware"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(sessionService service.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSession starts an anonymous shopper session
// POST /api/v1/sessions
func (ctrl *SessionController) CreateSession(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	session := ctrl.sessionService.Create()

	log.Info("Session created", map[string]interface{}{
		"session_id": session.ID,
		"active":     ctrl.sessionService.Count(),
	})

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"created_at": session.CreatedAt,
		"header":     middleware.SessionIDHeader,
	})
}

// EndSession discards the caller's session with its cart and favorites
// DELETE /api/v1/sessions/current
func (ctrl *SessionController) EndSession(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	if err := ctrl.sessionService.End(session.ID); err != nil {
		errors.ParseAndRespond(c, err, "end session")
		return
	}

	middleware.GetLoggerFromContext(c).Info("Session ended", map[string]interface{}{
		"session_id": session.ID,
	})
	c.JSON(http.StatusOK, gin.H{
		"message": "Session ended",
	})
}

// currentSession reads the session resolved by the session middleware and
// writes a 500 when the route was mounted without it.
func currentSession(c *gin.Context) (*service.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("Session middleware missing on route", nil, map[string]interface{}{
			"path": c.FullPath(),
		})
		errors.InternalError(c, "")
		return nil, false
	}
	return session, true
}
