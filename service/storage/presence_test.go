package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceWithoutRedis(t *testing.T) {
	// mirror calls are no-ops when Redis is not configured
	SetRoomCount("r-1", 3)

	count, ok, err := RoomCount("r-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, count)
}

func TestPresenceKey(t *testing.T) {
	assert.Equal(t, "wb:presence:r-1", presenceKey("r-1"))
}
