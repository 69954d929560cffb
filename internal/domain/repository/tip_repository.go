package repository

import (
	"context"

	"github.com/placementprep/placement-api/internal/domain/entity"
)

// TipRepository defines the interface for tip database operations.
type TipRepository interface {
	List(ctx context.Context) ([]entity.Tip, error)
	ListLatest(ctx context.Context, limit int64) ([]entity.Tip, error)
	Create(ctx context.Context, t *entity.Tip) error
	Update(ctx context.Context, id string, t *entity.Tip) (*entity.Tip, error)
	Delete(ctx context.Context, id string) error
}
