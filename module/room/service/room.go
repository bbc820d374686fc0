package service

import (
	"context"
	"time"

	roommodel "github.com/ankit-singh26/Whiteboard-Project/module/room/model"
	"github.com/ankit-singh26/Whiteboard-Project/tools/errs"
	"github.com/ankit-singh26/Whiteboard-Project/tools/ids"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Create(ctx context.Context, db *mongo.Database, name, creatorID string) (roommodel.Room, error) {
	room := roommodel.Room{
		Name:       name,
		RoomID:     ids.GenerateString(),
		Users:      []string{creatorID},
		CreateTime: time.Now(),
	}
	if _, err := db.Collection(roommodel.RoomCollection).InsertOne(ctx, room); err != nil {
		return roommodel.Room{}, errs.Wrap(err)
	}
	return room, nil
}

// Join adds userID to the room's member list. $addToSet makes re-joining a
// no-op, matching the relay's idempotent membership semantics.
func Join(ctx context.Context, db *mongo.Database, roomID, userID string) (roommodel.Room, error) {
	coll := db.Collection(roommodel.RoomCollection)

	var room roommodel.Room
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"room_id": roomID},
		bson.M{"$addToSet": bson.M{"users": userID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return roommodel.Room{}, errs.ErrRoomNotFound.Wrap()
	}
	if err != nil {
		return roommodel.Room{}, errs.Wrap(err)
	}
	return room, nil
}
