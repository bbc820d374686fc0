package room

import (
	"net/http"

	"github.com/ankit-singh26/Whiteboard-Project/logger"
	midsec "github.com/ankit-singh26/Whiteboard-Project/middleware/security"
	"github.com/ankit-singh26/Whiteboard-Project/module/room/service"
	"github.com/ankit-singh26/Whiteboard-Project/service/mgo"
	"github.com/ankit-singh26/Whiteboard-Project/service/storage"
	"github.com/ankit-singh26/Whiteboard-Project/tools/errs"
	"github.com/gin-gonic/gin"
)

type CreateReq struct {
	Name string `json:"name" binding:"required"`
}

type JoinReq struct {
	RoomID string `json:"roomId" binding:"required"`
}

func HandlerCreate(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}

	room, err := service.Create(c.Request.Context(), mgo.GetDB(), req.Name, c.GetString(midsec.CtxUserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func HandlerJoin(c *gin.Context) {
	var req JoinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}

	room, err := service.Join(c.Request.Context(), mgo.GetDB(), req.RoomID, c.GetString(midsec.CtxUserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// HandlerPresence reports the live participant count for a room from the
// Redis mirror. mirrored is false when the mirror is disabled or holds no
// entry; the relay's own count is authoritative either way.
func HandlerPresence(c *gin.Context) {
	roomID := c.Query("roomId")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail("roomId is required"))
		return
	}

	count, ok, err := storage.RoomCount(roomID)
	if err != nil {
		respondError(c, errs.ErrInternal.WithDetail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": roomID, "count": count, "mirrored": ok})
}

func respondError(c *gin.Context, err error) {
	status, body := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Errorf("[room] %s: %+v", c.FullPath(), err)
	}
	c.JSON(status, body)
}
