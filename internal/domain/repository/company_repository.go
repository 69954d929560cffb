package repository

import (
	"context"

	"github.com/placementprep/placement-api/internal/domain/entity"
)

// CompanyRepository defines the interface for company database operations.
// Update merges the settable fields and returns the post-update document;
// it returns ErrNotFound when the id does not resolve.
type CompanyRepository interface {
	List(ctx context.Context) ([]entity.Company, error)
	ListFeatured(ctx context.Context, limit int64) ([]entity.Company, error)
	Create(ctx context.Context, c *entity.Company) error
	Update(ctx context.Context, id string, c *entity.Company) (*entity.Company, error)
	Delete(ctx context.Context, id string) error
}
