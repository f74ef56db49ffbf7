package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDB represents a user document in the users collection.
// ID is generated by storage on insert; Username is unique across the collection.
type UserDB struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
}
