package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DropoffStatus is the lifecycle state of a drop-off.
type DropoffStatus string

const (
	DropoffStatusPending   DropoffStatus = "PENDING"
	DropoffStatusCompleted DropoffStatus = "COMPLETED"
)

// Dropoff represents a scheduled or completed recycling submission.
// DropoffID is the public UUID; the Mongo ObjectID stays internal.
// Categories and Station are open payloads stored and returned verbatim,
// never interpreted by the service.
type Dropoff struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"-"`
	DropoffID   string                 `bson:"id" json:"id"`
	UID         string                 `bson:"uid" json:"uid"`
	Categories  map[string]interface{} `bson:"categories" json:"categories"`
	StationID   string                 `bson:"stationId" json:"stationId"`
	Date        string                 `bson:"date" json:"date"`
	Time        string                 `bson:"time" json:"time"`
	Station     map[string]interface{} `bson:"station,omitempty" json:"station,omitempty"`
	Status      DropoffStatus          `bson:"status" json:"status"`
	TotalPoints int                    `bson:"totalPoints,omitempty" json:"totalPoints,omitempty"`
	CreatedAt   time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time              `bson:"updatedAt" json:"updatedAt"`
}
