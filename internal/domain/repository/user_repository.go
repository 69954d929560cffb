package repository

import (
	"context"

	"github.com/placementprep/placement-api/internal/domain/entity"
)

// UserRepository defines the interface for admin-user database operations.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpsertByEmail(ctx context.Context, u *entity.User) error
}
