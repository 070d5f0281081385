package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/corexify/backend/internal/models"
)

// ErrDuplicateEmail surfaces the unique-index violation on email so
// callers can map it to a conflict.
var ErrDuplicateEmail = errors.New("email already exists")

type AdminUserRepository struct {
	coll *mongo.Collection
}

func NewAdminUserRepository(db *mongo.Database) *AdminUserRepository {
	return &AdminUserRepository{coll: db.Collection(adminUsersCollection)}
}

func (r *AdminUserRepository) Create(ctx context.Context, admin *models.AdminUser) (string, error) {
	admin.Prepare()
	admin.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (r *AdminUserRepository) GetAll(ctx context.Context) ([]models.AdminUser, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	admins := []models.AdminUser{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, nil
	}

	var admin models.AdminUser
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// GetByEmail looks up an admin by normalized (lowercased) email.
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var admin models.AdminUser
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminUserRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
