package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placementprep/placement-api/internal/domain/entity"
	"github.com/placementprep/placement-api/internal/domain/repository"
)

type fakeTipRepo struct {
	mu   sync.Mutex
	tips []entity.Tip
	seq  map[primitive.ObjectID]int
	now  time.Time
}

func newFakeTipRepo() *fakeTipRepo {
	return &fakeTipRepo{seq: make(map[primitive.ObjectID]int), now: time.Unix(1700000000, 0).UTC()}
}

// advance moves the fake clock so subsequent creates get later timestamps.
func (r *fakeTipRepo) advance(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = r.now.Add(d)
}

func (r *fakeTipRepo) List(ctx context.Context) ([]entity.Tip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Tip, len(r.tips))
	copy(out, r.tips)
	return out, nil
}

func (r *fakeTipRepo) ListLatest(ctx context.Context, limit int64) ([]entity.Tip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Tip, len(r.tips))
	copy(out, r.tips)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTipRepo) Create(ctx context.Context, t *entity.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = primitive.NewObjectID()
	t.CreatedAt = r.now
	t.UpdatedAt = r.now
	r.seq[t.ID] = len(r.tips)
	r.tips = append(r.tips, *t)
	return nil
}

func (r *fakeTipRepo) Update(ctx context.Context, id string, t *entity.Tip) (*entity.Tip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tips {
		if r.tips[i].ID.Hex() == id {
			r.tips[i].Title = t.Title
			r.tips[i].Description = t.Description
			r.tips[i].Link = t.Link
			r.tips[i].UpdatedAt = r.now
			updated := r.tips[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTipRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tips {
		if r.tips[i].ID.Hex() == id {
			r.tips = append(r.tips[:i], r.tips[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func TestTipRoundTrip(t *testing.T) {
	repo := newFakeTipRepo()
	svc := NewTipService(repo, nil, nil)

	created, err := svc.Create(context.Background(), TipInput{
		Title:       "A",
		Description: "0123456789",
		Link:        "https://x",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected generated id")
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 tip, got %d", len(all))
	}
	got := all[0]
	if got.Title != "A" || got.Description != "0123456789" || got.Link != "https://x" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestLatestTipsOrderAndCap(t *testing.T) {
	repo := newFakeTipRepo()
	svc := NewTipService(repo, nil, nil)

	titles := []string{"T1", "T2", "T3", "T4"}
	for _, title := range titles {
		repo.advance(time.Second)
		if _, err := svc.Create(context.Background(), TipInput{
			Title: title, Description: "d", Link: "https://x",
		}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	latest, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	want := []string{"T4", "T3", "T2"}
	if len(latest) != len(want) {
		t.Fatalf("expected %d tips, got %d", len(want), len(latest))
	}
	for i, title := range want {
		if latest[i].Title != title {
			t.Fatalf("position %d: want %s, got %s", i, title, latest[i].Title)
		}
	}
}

func TestLatestTipsTieBreakByInsertionOrder(t *testing.T) {
	repo := newFakeTipRepo()
	svc := NewTipService(repo, nil, nil)

	// identical timestamps: newest insertion wins
	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.Create(context.Background(), TipInput{
			Title: title, Description: "d", Link: "https://x",
		}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	latest, err := svc.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(latest) != 3 || latest[0].Title != "third" || latest[2].Title != "first" {
		t.Fatalf("unexpected tie-break order: %+v", latest)
	}
}

func TestTipDeleteNotFound(t *testing.T) {
	svc := NewTipService(newFakeTipRepo(), nil, nil)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
