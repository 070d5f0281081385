package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/corexify/backend/internal/models"
)

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactsCollection)}
}

// Create persists a new contact with read=false and a fresh timestamp,
// returning the store-assigned id.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) (string, error) {
	contact.Read = false
	contact.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, contact)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

// GetAll lists contacts newest first.
func (r *ContactRepository) GetAll(ctx context.Context, limit int64) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByID returns nil without error when no document matches.
func (r *ContactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, nil
	}

	var contact models.Contact
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepository) MarkAsRead(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
