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

type InquiryRepository struct {
	coll *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{coll: db.Collection(inquiriesCollection)}
}

// Create persists a new inquiry with status "new" and a fresh timestamp.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.ProjectInquiry) (string, error) {
	inquiry.Status = models.InquiryStatusNew
	inquiry.CreatedAt = time.Now().UTC()
	if inquiry.AttachedFiles == nil {
		inquiry.AttachedFiles = []string{}
	}

	res, err := r.coll.InsertOne(ctx, inquiry)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (r *InquiryRepository) GetAll(ctx context.Context, limit int64) ([]models.ProjectInquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	inquiries := []models.ProjectInquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*models.ProjectInquiry, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, nil
	}

	var inquiry models.ProjectInquiry
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&inquiry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *InquiryRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
