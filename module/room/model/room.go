package model

import "time"

const RoomCollection = "rooms"

// Room is the metadata record behind the REST API. The realtime relay never
// reads it: room keys are opaque strings on the wire and the relay creates
// its own in-memory state on first join.
type Room struct {
	Name       string    `bson:"name" json:"name"`
	RoomID     string    `bson:"room_id" json:"roomId"`
	Users      []string  `bson:"users" json:"users"`
	CreateTime time.Time `bson:"create_time" json:"-"`
}
