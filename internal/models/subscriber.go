package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscriber is a newsletter signup. Email is unique, case-insensitive.
type Subscriber struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	SubscribedAt time.Time     `bson:"subscribed_at" json:"subscribed_at"`
}
