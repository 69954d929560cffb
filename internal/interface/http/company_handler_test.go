package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placementprep/placement-api/internal/application"
	"github.com/placementprep/placement-api/internal/domain/entity"
	"github.com/placementprep/placement-api/internal/domain/repository"
	"github.com/placementprep/placement-api/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies []entity.Company
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Company, len(r.companies))
	copy(out, r.companies)
	return out, nil
}

func (r *fakeCompanyRepo) ListFeatured(ctx context.Context, limit int64) ([]entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Company{}
	for _, c := range r.companies {
		if c.Featured {
			out = append(out, c)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.companies = append(r.companies, *c)
	return nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, id string, c *entity.Company) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.companies {
		if r.companies[i].ID.Hex() == id {
			r.companies[i].Name = c.Name
			r.companies[i].Description = c.Description
			r.companies[i].Roles = c.Roles
			r.companies[i].Requirements = c.Requirements
			r.companies[i].Featured = c.Featured
			updated := r.companies[i]
			return &updated, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.companies {
		if r.companies[i].ID.Hex() == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func companyTestRouter(repo *fakeCompanyRepo) *gin.Engine {
	svc := application.NewCompanyService(repo, nil, nil)
	h := NewCompanyHandler(svc, testLogger())

	r := gin.New()
	r.GET("/api/companies", h.List)
	r.POST("/api/companies", h.Create)
	r.PUT("/api/companies", h.Update)
	r.DELETE("/api/companies/:id", h.Delete)
	return r
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
	return w, env
}

func TestCreateCompanyValid(t *testing.T) {
	repo := &fakeCompanyRepo{}
	r := companyTestRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/companies",
		`{"name":"Acme","description":"widgets","roles":["SDE"],"requirements":"CGPA 7+"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body: %s)", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope: %s", w.Body.String())
	}

	var c entity.Company
	if err := json.Unmarshal(env.Data, &c); err != nil {
		t.Fatalf("decode company: %v", err)
	}
	if c.ID.IsZero() || c.Featured {
		t.Fatalf("unexpected company: %+v", c)
	}
}

func TestCreateCompanyMissingName(t *testing.T) {
	repo := &fakeCompanyRepo{}
	r := companyTestRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/companies",
		`{"description":"widgets","roles":["SDE"],"requirements":"CGPA 7+"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.Success {
		t.Fatal("expected error envelope")
	}
	if env.Error["name"] == "" {
		t.Fatalf("expected a name field error, got %v", env.Error)
	}
	if len(repo.companies) != 0 {
		t.Fatal("store must be unchanged on validation failure")
	}
}

func TestCreateCompanyEmptyRoles(t *testing.T) {
	repo := &fakeCompanyRepo{}
	r := companyTestRouter(repo)

	w, env := doJSON(t, r, http.MethodPost, "/api/companies",
		`{"name":"Acme","description":"widgets","roles":[],"requirements":"CGPA 7+"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.Error["roles"] == "" {
		t.Fatalf("expected a roles field error, got %v", env.Error)
	}
}

func TestCompanyJSONUsesCamelCaseTimestamps(t *testing.T) {
	repo := &fakeCompanyRepo{}
	r := companyTestRouter(repo)

	_, env := doJSON(t, r, http.MethodPost, "/api/companies",
		`{"name":"Acme","description":"widgets","roles":["SDE"],"requirements":"CGPA 7+"}`)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(env.Data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["createdAt"]; !ok {
		t.Fatalf("expected createdAt key, got %v", keysOf(raw))
	}
	if _, ok := raw["created_at"]; ok {
		t.Fatal("snake_case timestamp key must not appear")
	}
}

func keysOf(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestUpdateCompanyNotFoundHTTP(t *testing.T) {
	repo := &fakeCompanyRepo{}
	r := companyTestRouter(repo)

	body := `{"id":"` + primitive.NewObjectID().Hex() + `","name":"Acme","description":"d","roles":["SDE"],"requirements":"r"}`
	w, _ := doJSON(t, r, http.MethodPut, "/api/companies", body)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteCompanyUnknownID(t *testing.T) {
	repo := &fakeCompanyRepo{}
	r := companyTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/companies/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestListCompanies(t *testing.T) {
	repo := &fakeCompanyRepo{}
	r := companyTestRouter(repo)

	for _, name := range []string{"Acme", "Globex"} {
		_, env := doJSON(t, r, http.MethodPost, "/api/companies",
			`{"name":"`+name+`","description":"d","roles":["SDE"],"requirements":"r"}`)
		if !env.Success {
			t.Fatalf("seed create failed: %+v", env)
		}
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/companies", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var companies []entity.Company
	if err := json.Unmarshal(env.Data, &companies); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}
}
