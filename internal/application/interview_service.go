package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/placementprep/placement-api/internal/domain/entity"
	repo "github.com/placementprep/placement-api/internal/domain/repository"
	"github.com/placementprep/placement-api/pkg/mailer"
)

// Notifier publishes JSON jobs to the email queue. Satisfied by
// helpers.RabbitPublisher; nil disables notifications.
type Notifier interface {
	PublishJSON(ctx context.Context, body any) error
}

// InterviewService handles the public submission flow and the protected
// admin reads over interview experiences.
type InterviewService struct {
	Repo        repo.InterviewRepository
	Notifier    Notifier
	ES          *elasticsearch.Client
	ESIndex     string
	NotifyEmail string
	Logger      *logrus.Logger
}

func NewInterviewService(repo repo.InterviewRepository, notifier Notifier, es *elasticsearch.Client, esIndex, notifyEmail string, logger *logrus.Logger) *InterviewService {
	return &InterviewService{
		Repo:        repo,
		Notifier:    notifier,
		ES:          es,
		ESIndex:     esIndex,
		NotifyEmail: notifyEmail,
		Logger:      logger,
	}
}

// SubmissionInput carries the form fields. OtherCourse is only consulted when
// Course is the literal "Other".
type SubmissionInput struct {
	FullName       string
	Email          string
	University     string
	Course         string
	OtherCourse    string
	GraduationYear string
	LinkedinURL    string

	CompanyName string
	JobTitle    string
	JobLocation string
	Salary      string

	TotalRounds           int
	TechnicalRoundDetails string
	HRRoundDetails        string

	PreparationStrategy string
	ChallengingQuestion string
	Advice              string
}

// Submit stores a new experience. The stored course is never the literal
// "Other": the alternate value replaces it before the write.
func (s *InterviewService) Submit(ctx context.Context, in SubmissionInput) (*entity.InterviewExperience, error) {
	course := in.Course
	if strings.EqualFold(course, "Other") && strings.TrimSpace(in.OtherCourse) != "" {
		course = strings.TrimSpace(in.OtherCourse)
	}

	e := &entity.InterviewExperience{
		FullName:              in.FullName,
		Email:                 in.Email,
		University:            in.University,
		Course:                course,
		GraduationYear:        in.GraduationYear,
		LinkedinURL:           in.LinkedinURL,
		CompanyName:           in.CompanyName,
		JobTitle:              in.JobTitle,
		JobLocation:           in.JobLocation,
		Salary:                in.Salary,
		TotalRounds:           in.TotalRounds,
		TechnicalRoundDetails: in.TechnicalRoundDetails,
		HRRoundDetails:        in.HRRoundDetails,
		PreparationStrategy:   in.PreparationStrategy,
		ChallengingQuestion:   in.ChallengingQuestion,
		Advice:                in.Advice,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.notifyAdmin(ctx, e)
	_ = s.indexExperience(ctx, e)
	return e, nil
}

func (s *InterviewService) List(ctx context.Context) ([]entity.InterviewExperience, error) {
	return s.Repo.List(ctx)
}

func (s *InterviewService) GetByID(ctx context.Context, id string) (*entity.InterviewExperience, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *InterviewService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// notifyAdmin enqueues an email job; delivery is the worker's problem. A
// failed publish never fails the submission.
func (s *InterviewService) notifyAdmin(ctx context.Context, e *entity.InterviewExperience) {
	if s.Notifier == nil || s.NotifyEmail == "" {
		return
	}
	job := mailer.EmailJob{
		To:       s.NotifyEmail,
		Template: mailer.TemplateSubmissionNotification,
		Data: map[string]any{
			"FullName":    e.FullName,
			"University":  e.University,
			"CompanyName": e.CompanyName,
			"JobTitle":    e.JobTitle,
			"JobLocation": e.JobLocation,
			"TotalRounds": e.TotalRounds,
		},
	}
	if err := s.Notifier.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("id", e.ID.Hex()).Warn("notification publish failed")
	}
}

func (s *InterviewService) indexExperience(ctx context.Context, e *entity.InterviewExperience) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          e.ID.Hex(),
		"fullName":    e.FullName,
		"university":  e.University,
		"course":      e.Course,
		"companyName": e.CompanyName,
		"jobTitle":    e.JobTitle,
		"jobLocation": e.JobLocation,
		"totalRounds": e.TotalRounds,
		"createdAt":   e.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: e.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", e.ID.Hex()).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("id", e.ID.Hex()).Warn("es index response error")
	}
	return nil
}

func (s *InterviewService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match over the indexed submission fields.
func (s *InterviewService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"companyName^2", "jobTitle", "university", "fullName"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search returned %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
