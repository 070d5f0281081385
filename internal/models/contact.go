package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Contact is a message left through the public contact form. Admins can
// mark it read and delete it; nothing else mutates it.
type Contact struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Message   string        `bson:"message" json:"message"`
	Read      bool          `bson:"read" json:"read"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
