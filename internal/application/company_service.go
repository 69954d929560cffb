package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/placementprep/placement-api/internal/domain/entity"
	repo "github.com/placementprep/placement-api/internal/domain/repository"
	"github.com/placementprep/placement-api/pkg/helpers"
)

// featuredLimit caps the landing-page view regardless of how many companies
// carry the flag.
const featuredLimit = 3

const featuredCacheKey = "cache:featured_companies"
const featuredCacheTTL = time.Minute

type CompanyService struct {
	Repo   repo.CompanyRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewCompanyService(repo repo.CompanyRepository, rdb *redis.Client, logger *logrus.Logger) *CompanyService {
	return &CompanyService{Repo: repo, Redis: rdb, Logger: logger}
}

// CompanyInput carries the settable fields of a company. Featured defaults to
// false when the payload omits it.
type CompanyInput struct {
	Name         string
	Description  string
	Roles        []string
	Requirements string
	Featured     bool
}

func (s *CompanyService) List(ctx context.Context) ([]entity.Company, error) {
	return s.Repo.List(ctx)
}

// Featured serves the landing page; results are cached briefly since the
// landing page is the hottest read path.
func (s *CompanyService) Featured(ctx context.Context) ([]entity.Company, error) {
	if s.Redis != nil {
		var cached []entity.Company
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, featuredCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	companies, err := s.Repo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, featuredCacheKey, companies, featuredCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("featured cache set failed")
		}
	}
	return companies, nil
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput) (*entity.Company, error) {
	c := &entity.Company{
		Name:         in.Name,
		Description:  in.Description,
		Roles:        in.Roles,
		Requirements: in.Requirements,
		Featured:     in.Featured,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return c, nil
}

func (s *CompanyService) Update(ctx context.Context, id string, in CompanyInput) (*entity.Company, error) {
	c := &entity.Company{
		Name:         in.Name,
		Description:  in.Description,
		Roles:        in.Roles,
		Requirements: in.Requirements,
		Featured:     in.Featured,
	}
	updated, err := s.Repo.Update(ctx, id, c)
	if err != nil {
		return nil, err
	}
	s.invalidateFeatured(ctx)
	return updated, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateFeatured(ctx)
	return nil
}

func (s *CompanyService) invalidateFeatured(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, featuredCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("featured cache invalidation failed")
	}
}
