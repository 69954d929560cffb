package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/placementprep/placement-api/config"
	"github.com/placementprep/placement-api/internal/domain/entity"
	"github.com/placementprep/placement-api/internal/infrastructure/mongodb"
	"github.com/placementprep/placement-api/pkg/helpers"
)

// Seeds the admin user. There is no registration endpoint; this is the only
// way accounts come into existence.
//
//	SEED_EMAIL=admin@example.com SEED_PASSWORD=... go run ./cmd/seed
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	email := os.Getenv("SEED_EMAIL")
	password := os.Getenv("SEED_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_EMAIL and SEED_PASSWORD are required")
	}

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.User{Email: email, Password: hash}
	if err := mongodb.NewUserRepository(db).UpsertByEmail(ctx, u); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s\n", u.ID.Hex(), u.Email)
}
