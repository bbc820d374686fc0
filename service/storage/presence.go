package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/ankit-singh26/Whiteboard-Project/logger"
	rds "github.com/ankit-singh26/Whiteboard-Project/service/storage/redis"
	"github.com/redis/go-redis/v9"
)

// Room presence mirror. The authoritative participant count lives in the
// in-process registry; these keys exist so dashboards and ops tooling can
// see live counts without talking to the relay. Writes are best-effort:
// when Redis is not configured every call is a no-op.

const presenceTTL = 5 * time.Minute

// presence key: wb:presence:<room>
func presenceKey(room string) string { return "wb:presence:" + room }

// SetRoomCount mirrors the participant count for a room.
func SetRoomCount(room string, count int) {
	if !rds.Ready() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rds.GetRedis().Set(ctx, presenceKey(room), count, presenceTTL).Err(); err != nil {
		logger.Debugf("[presence] set room=%s count=%d: %v", room, count, err)
	}
}

// RoomCount reads the mirrored count. ok is false when the key is absent or
// Redis is not configured.
func RoomCount(room string) (count int, ok bool, err error) {
	if !rds.Ready() {
		return 0, false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	val, err := rds.GetRedis().Get(ctx, presenceKey(room)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
