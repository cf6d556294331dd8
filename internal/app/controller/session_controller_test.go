package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionController_CreateAndEnd(t *testing.T) {
	ts := setupControllerTest(t)

	sessionID := ts.newSession(t)
	assert.NotEmpty(t, sessionID)
	assert.Equal(t, 1, ts.sessions.Count())

	w := ts.do(t, http.MethodDelete, "/api/v1/sessions/current", sessionID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, ts.sessions.Count())

	w = ts.do(t, http.MethodGet, "/api/v1/cart", sessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_FOUND")
}
