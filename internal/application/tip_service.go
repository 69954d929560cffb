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

const latestTipsLimit = 3

const latestTipsCacheKey = "cache:latest_tips"
const latestTipsCacheTTL = time.Minute

type TipService struct {
	Repo   repo.TipRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewTipService(repo repo.TipRepository, rdb *redis.Client, logger *logrus.Logger) *TipService {
	return &TipService{Repo: repo, Redis: rdb, Logger: logger}
}

type TipInput struct {
	Title       string
	Description string
	Link        string
}

func (s *TipService) List(ctx context.Context) ([]entity.Tip, error) {
	return s.Repo.List(ctx)
}

// Latest returns the newest tips for the landing page, creation time
// descending.
func (s *TipService) Latest(ctx context.Context) ([]entity.Tip, error) {
	if s.Redis != nil {
		var cached []entity.Tip
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, latestTipsCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	tips, err := s.Repo.ListLatest(ctx, latestTipsLimit)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, latestTipsCacheKey, tips, latestTipsCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("latest tips cache set failed")
		}
	}
	return tips, nil
}

func (s *TipService) Create(ctx context.Context, in TipInput) (*entity.Tip, error) {
	t := &entity.Tip{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.invalidateLatest(ctx)
	return t, nil
}

func (s *TipService) Update(ctx context.Context, id string, in TipInput) (*entity.Tip, error) {
	t := &entity.Tip{
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
	}
	updated, err := s.Repo.Update(ctx, id, t)
	if err != nil {
		return nil, err
	}
	s.invalidateLatest(ctx)
	return updated, nil
}

func (s *TipService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateLatest(ctx)
	return nil
}

func (s *TipService) invalidateLatest(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, latestTipsCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("latest tips cache invalidation failed")
	}
}
