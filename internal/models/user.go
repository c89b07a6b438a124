package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a rewards-program member, keyed by the caller-supplied uid.
// The Mongo ObjectID is internal and never serialized to API responses.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID         string             `bson:"uid" json:"uid"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Points      int                `bson:"points" json:"points"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
