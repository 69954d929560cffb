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

type InterviewRepository struct {
	coll *mongo.Collection
}

func NewInterviewRepository(db *mongo.Database) *InterviewRepository {
	return &InterviewRepository{coll: db.Collection(interviewsCollection)}
}

// List returns all experiences, newest first, for the admin dashboard.
func (r *InterviewRepository) List(ctx context.Context) ([]entity.InterviewExperience, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	out := []entity.InterviewExperience{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, id string) (*entity.InterviewExperience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	e := &entity.InterviewExperience{}
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *InterviewRepository) Create(ctx context.Context, e *entity.InterviewExperience) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *InterviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

var _ repository.InterviewRepository = (*InterviewRepository)(nil)
