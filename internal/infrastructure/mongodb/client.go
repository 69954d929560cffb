package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection      = "users"
	companiesCollection  = "companies"
	tipsCollection       = "tips"
	interviewsCollection = "interview_experiences"
)

// Connect establishes the process-wide client and verifies the deployment is
// reachable before returning. The client is built once at startup and shared;
// the driver maintains its own connection pool underneath.
func Connect(ctx context.Context, uri, dbName string, connectTimeout time.Duration) (*mongo.Database, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the queries rely on. Safe to run on every
// startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return err
	}
	if _, err := db.Collection(companiesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "featured", Value: 1}},
	}); err != nil {
		return err
	}
	// latest-N views sort on createdAt desc with _id as tie-break
	for _, name := range []string{tipsCollection, interviewsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
		}); err != nil {
			return err
		}
	}
	return nil
}
