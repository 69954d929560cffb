package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placementprep/placement-api/internal/domain/entity"
	"github.com/placementprep/placement-api/internal/domain/repository"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	u := &entity.User{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpsertByEmail inserts the user or refreshes the password hash of an existing
// one. Used by cmd/seed; there is no registration endpoint.
func (r *UserRepository) UpsertByEmail(ctx context.Context, u *entity.User) error {
	now := time.Now().UTC()
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": u.Email},
		bson.M{
			"$set":         bson.M{"password": u.Password, "updatedAt": now},
			"$setOnInsert": bson.M{"email": u.Email, "createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	return res.Decode(u)
}

var _ repository.UserRepository = (*UserRepository)(nil)
