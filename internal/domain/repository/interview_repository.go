package repository

import (
	"context"

	"github.com/placementprep/placement-api/internal/domain/entity"
)

// InterviewRepository defines the interface for interview-experience database
// operations. Experiences are append-only: there is no update.
type InterviewRepository interface {
	List(ctx context.Context) ([]entity.InterviewExperience, error)
	GetByID(ctx context.Context, id string) (*entity.InterviewExperience, error)
	Create(ctx context.Context, e *entity.InterviewExperience) error
	Delete(ctx context.Context, id string) error
}
