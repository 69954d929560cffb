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

type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(companiesCollection)}
}

func (r *CompanyRepository) List(ctx context.Context) ([]entity.Company, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []entity.Company{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CompanyRepository) ListFeatured(ctx context.Context, limit int64) ([]entity.Company, error) {
	cur, err := r.coll.Find(ctx, bson.M{"featured": true}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	out := []entity.Company{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, id string, c *entity.Company) (*entity.Company, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	set := bson.M{
		"name":         c.Name,
		"description":  c.Description,
		"roles":        c.Roles,
		"requirements": c.Requirements,
		"featured":     c.Featured,
		"updatedAt":    time.Now().UTC(),
	}
	updated := &entity.Company{}
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
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

var _ repository.CompanyRepository = (*CompanyRepository)(nil)
