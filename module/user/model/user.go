package model

import "time"

const UserCollection = "users"

// User is the account master record. Password holds the bcrypt hash only;
// it never serializes to JSON.
type User struct {
	UserID     string    `bson:"user_id" json:"userId"`
	Username   string    `bson:"username" json:"username"`
	Email      string    `bson:"email" json:"email"`
	Password   string    `bson:"password" json:"-"`
	CreateTime time.Time `bson:"create_time" json:"-"`
	UpdateTime time.Time `bson:"update_time" json:"-"`
}
