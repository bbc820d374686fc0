package global

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/ankit-singh26/Whiteboard-Project/data/database/mgo/mongoutil"
	"github.com/ankit-singh26/Whiteboard-Project/logger"
	mgoSrv "github.com/ankit-singh26/Whiteboard-Project/service/mgo"
	redis "github.com/ankit-singh26/Whiteboard-Project/service/storage/redis"
	"github.com/ankit-singh26/Whiteboard-Project/tools/ids"
	"github.com/ankit-singh26/Whiteboard-Project/tools/security"
)

// tokenTTL matches the 7-day sessions the web client expects.
const tokenTTL = 7 * 24 * time.Hour

func ConfigAll(ctx context.Context) error {
	ConfigIds()
	ConfigRedis()
	return ConfigMgo(ctx)
}

func ConfigIds() {
	node := int64(1)
	if v := os.Getenv("WB_NODE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			node = n
		}
	}
	ids.SetNodeID(node)
}

func JWTSecret() []byte {
	if v := os.Getenv("JWT_KEY"); v != "" {
		return []byte(v)
	}
	// dev fallback only; production sets JWT_KEY
	return []byte("mN9b1f8zPq+W2xjX/45sKcVd0TfyoG+3Hp5Z8q9Rj1o=")
}

func JWTOptions() security.Options {
	opts := security.DefaultOptions(JWTSecret())
	opts.TTL = tokenTTL
	return opts
}

// ConfigRedis wires the presence mirror. Redis is optional: without
// REDIS_ADDR the mirror is disabled and the relay runs purely in-process.
func ConfigRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Infof("[config] REDIS_ADDR not set, presence mirror disabled")
		return
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}
	cfg := redis.Config{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
	if err := redis.InitRedis(cfg); err != nil {
		logger.Warnf("[config] redis init failed, presence mirror disabled: %v", err)
	}
}

func ConfigMgo(ctx context.Context) error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "whiteboard"
	}

	cfg := &mongoutil.Config{
		Uri:      uri,
		Database: dbName,
		Username: os.Getenv("MONGO_USER"),
		Password: os.Getenv("MONGO_PASSWORD"),
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return mgoSrv.Init(ctx, cfg)
}
