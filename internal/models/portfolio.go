package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PortfolioItem is a published project. The thumbnail and video asset
// pairs (URL + public id) are always set together: the public id is what
// lets us delete the remote asset later.
type PortfolioItem struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title             string        `bson:"title" json:"title"`
	Description       string        `bson:"description" json:"description"`
	Technologies      []string      `bson:"technologies" json:"technologies"`
	Category          string        `bson:"category" json:"category"`
	Status            string        `bson:"status" json:"status"`
	ThumbnailURL      string        `bson:"thumbnailUrl" json:"thumbnailUrl"`
	ThumbnailPublicID string        `bson:"thumbnail_public_id" json:"thumbnail_public_id"`
	VideoURL          string        `bson:"videoUrl" json:"videoUrl"`
	VideoPublicID     string        `bson:"video_public_id" json:"video_public_id"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updated_at"`
}
