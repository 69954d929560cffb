package application

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placementprep/placement-api/internal/domain/entity"
	"github.com/placementprep/placement-api/internal/domain/repository"
	"github.com/placementprep/placement-api/pkg/mailer"
)

type fakeInterviewRepo struct {
	mu          sync.Mutex
	experiences []entity.InterviewExperience
}

func (r *fakeInterviewRepo) List(ctx context.Context) ([]entity.InterviewExperience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.InterviewExperience, len(r.experiences))
	copy(out, r.experiences)
	return out, nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id string) (*entity.InterviewExperience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.experiences {
		if r.experiences[i].ID.Hex() == id {
			e := r.experiences[i]
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeInterviewRepo) Create(ctx context.Context, e *entity.InterviewExperience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	r.experiences = append(r.experiences, *e)
	return nil
}

func (r *fakeInterviewRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.experiences {
		if r.experiences[i].ID.Hex() == id {
			r.experiences = append(r.experiences[:i], r.experiences[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeNotifier struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (n *fakeNotifier) PublishJSON(ctx context.Context, body any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.jobs = append(n.jobs, body)
	return nil
}

func sampleSubmission() SubmissionInput {
	return SubmissionInput{
		FullName:              "Priya Sharma",
		Email:                 "priya@example.com",
		University:            "NIT Trichy",
		Course:                "B.Tech CSE",
		GraduationYear:        "2025",
		CompanyName:           "Acme",
		JobTitle:              "SDE I",
		JobLocation:           "Bengaluru",
		Salary:                "12 LPA",
		TotalRounds:           4,
		TechnicalRoundDetails: "DSA + system design",
		HRRoundDetails:        "culture fit",
		PreparationStrategy:   "leetcode daily",
		ChallengingQuestion:   "LRU cache",
		Advice:                "start early",
	}
}

func newInterviewService(r repository.InterviewRepository, n Notifier) *InterviewService {
	return NewInterviewService(r, n, nil, "", "admin@example.com", nil)
}

func TestSubmitStoresAllFields(t *testing.T) {
	repo := &fakeInterviewRepo{}
	svc := newInterviewService(repo, nil)

	in := sampleSubmission()
	created, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected generated id")
	}

	got, err := svc.GetByID(context.Background(), created.ID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != in.FullName || got.Course != in.Course || got.TotalRounds != in.TotalRounds {
		t.Fatalf("stored document mismatch: %+v", got)
	}
	if got.TechnicalRoundDetails != in.TechnicalRoundDetails || got.Advice != in.Advice {
		t.Fatalf("stored document mismatch: %+v", got)
	}
}

func TestSubmitSubstitutesOtherCourse(t *testing.T) {
	repo := &fakeInterviewRepo{}
	svc := newInterviewService(repo, nil)

	in := sampleSubmission()
	in.Course = "Other"
	in.OtherCourse = "  B.Des Interaction Design "

	created, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Course != "B.Des Interaction Design" {
		t.Fatalf("expected alternate course, got %q", created.Course)
	}
}

func TestSubmitKeepsRegularCourse(t *testing.T) {
	repo := &fakeInterviewRepo{}
	svc := newInterviewService(repo, nil)

	in := sampleSubmission()
	in.OtherCourse = "should be ignored"

	created, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Course != "B.Tech CSE" {
		t.Fatalf("course must not be substituted, got %q", created.Course)
	}
}

func TestSubmitEnqueuesNotification(t *testing.T) {
	repo := &fakeInterviewRepo{}
	notifier := &fakeNotifier{}
	svc := newInterviewService(repo, notifier)

	if _, err := svc.Submit(context.Background(), sampleSubmission()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(notifier.jobs))
	}
	job, ok := notifier.jobs[0].(mailer.EmailJob)
	if !ok {
		t.Fatalf("unexpected job type %T", notifier.jobs[0])
	}
	if job.To != "admin@example.com" || job.Template != mailer.TemplateSubmissionNotification {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	repo := &fakeInterviewRepo{}
	notifier := &fakeNotifier{err: errors.New("broker down")}
	svc := newInterviewService(repo, notifier)

	created, err := svc.Submit(context.Background(), sampleSubmission())
	if err != nil {
		t.Fatalf("submit must not fail on publish error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID.Hex()); err != nil {
		t.Fatalf("submission must be stored: %v", err)
	}
}

func TestInterviewDeleteNotFound(t *testing.T) {
	svc := newInterviewService(&fakeInterviewRepo{}, nil)

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchWithoutIndexReturnsEmpty(t *testing.T) {
	svc := newInterviewService(&fakeInterviewRepo{}, nil)

	got, err := svc.Search(context.Background(), "acme", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result without an index, got %d", len(got))
	}
}

// stubESTransport serves a canned response for every request the ES client makes.
type stubESTransport struct {
	status int
	body   string
}

func (t *stubESTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: t.status,
		Header: http.Header{
			"X-Elastic-Product": []string{"Elasticsearch"},
			"Content-Type":      []string{"application/json"},
		},
		Body: io.NopCloser(strings.NewReader(t.body)),
	}, nil
}

func stubESService(t *testing.T, status int, body string) *InterviewService {
	t.Helper()
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: &stubESTransport{status: status, body: body},
	})
	if err != nil {
		t.Fatalf("es client: %v", err)
	}
	return NewInterviewService(&fakeInterviewRepo{}, nil, es, "interview_experiences", "", nil)
}

func TestSearchParsesHits(t *testing.T) {
	svc := stubESService(t, http.StatusOK, `{
		"hits": {"hits": [
			{"_id": "a1", "_source": {"companyName": "Acme", "jobTitle": "SDE I"}},
			{"_id": "b2", "_source": {"companyName": "Globex", "jobTitle": "SRE"}}
		]}
	}`)

	got, err := svc.Search(context.Background(), "acme", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}
	if got[0]["companyName"] != "Acme" || got[1]["jobTitle"] != "SRE" {
		t.Fatalf("unexpected hits: %v", got)
	}
}

func TestSearchReturnsErrorOnIndexFailure(t *testing.T) {
	svc := stubESService(t, http.StatusNotFound,
		`{"error":{"type":"index_not_found_exception","reason":"no such index"}}`)

	if _, err := svc.Search(context.Background(), "acme", 10); err == nil {
		t.Fatal("expected an error when the index query fails")
	}
}
