package mgo

import (
	"context"
	"sync"

	"github.com/ankit-singh26/Whiteboard-Project/data/database/mgo/mongoutil"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	mu sync.RWMutex
	db *mongo.Database
)

// Init connects the process-wide database handle. Called once from startup
// wiring before any handler runs.
func Init(ctx context.Context, cfg *mongoutil.Config) error {
	cli, err := mongoutil.NewMongoDB(ctx, cfg)
	if err != nil {
		return err
	}
	mu.Lock()
	db = cli.GetDB()
	mu.Unlock()
	return nil
}

// GetDB returns the shared database; panics when Init was never called so a
// miswired startup fails loudly instead of on the first query.
func GetDB() *mongo.Database {
	mu.RLock()
	defer mu.RUnlock()
	if db == nil {
		panic("mongo not initialized, call mgo.Init first")
	}
	return db
}

// Ready reports whether Init has completed.
func Ready() bool {
	mu.RLock()
	defer mu.RUnlock()
	return db != nil
}
