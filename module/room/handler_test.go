package room

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresenceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/rooms/presence", HandlerPresence)
	return r
}

func TestHandlerPresenceWithoutMirror(t *testing.T) {
	// no Redis in the test process, so the mirror reports nothing
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/presence?roomId=r-1", nil)
	newPresenceRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		RoomID   string `json:"roomId"`
		Count    int    `json:"count"`
		Mirrored bool   `json:"mirrored"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "r-1", body.RoomID)
	assert.Zero(t, body.Count)
	assert.False(t, body.Mirrored)
}

func TestHandlerPresenceMissingRoomID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/presence", nil)
	newPresenceRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
