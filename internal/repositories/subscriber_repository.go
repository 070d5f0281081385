package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/corexify/backend/internal/models"
)

type SubscriberRepository struct {
	coll *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{coll: db.Collection(subscribersCollection)}
}

// Create stores a subscriber with a normalized email. It returns
// ErrDuplicateEmail both when the pre-insert lookup finds a match and
// when the unique index rejects a concurrent duplicate.
func (r *SubscriberRepository) Create(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := r.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateEmail
	}

	sub := &models.Subscriber{
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (r *SubscriberRepository) GetAll(ctx context.Context, limit int64) ([]models.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscribed_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	subs := []models.Subscriber{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubscriberRepository) GetByID(ctx context.Context, id string) (*models.Subscriber, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, nil
	}

	var sub models.Subscriber
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var sub models.Subscriber
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *SubscriberRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
