package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names as stored in Mongo.
const (
	contactsCollection    = "contacts"
	inquiriesCollection   = "project_inquiries"
	portfolioCollection   = "portfolio"
	adminUsersCollection  = "admin_users"
	subscribersCollection = "subscribers"
)

// ErrInvalidID is returned when a path parameter is not a valid document id.
var ErrInvalidID = errors.New("invalid document id")

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// EnsureIndexes creates the unique email indexes for admin users and
// subscribers. Duplicate-email checks elsewhere are read-then-write; the
// indexes close the race between concurrent identical requests.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection(adminUsersCollection).Indexes().CreateOne(ctx, emailUnique); err != nil {
		return err
	}
	if _, err := db.Collection(subscribersCollection).Indexes().CreateOne(ctx, emailUnique); err != nil {
		return err
	}
	return nil
}
