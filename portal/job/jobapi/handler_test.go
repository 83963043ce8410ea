package jobapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/jobportal/pkg/errx"
	"github.com/talentgate/jobportal/pkg/kernel"
	"github.com/talentgate/jobportal/portal/adminauth"
	"github.com/talentgate/jobportal/portal/job"
	"github.com/talentgate/jobportal/portal/job/jobsrv"
)

// memJobRepo is a minimal in-memory job.Repository for handler tests.
type memJobRepo struct {
	store map[int64]*job.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{store: make(map[int64]*job.Job)}
}

func (m *memJobRepo) NextID(ctx context.Context) (kernel.JobID, error) {
	var max int64
	for id := range m.store {
		if id > max {
			max = id
		}
	}
	return kernel.NewJobID(max + 1), nil
}

func (m *memJobRepo) Create(ctx context.Context, posting *job.Job) error {
	if _, exists := m.store[posting.ID.Int64()]; exists {
		return job.ErrDuplicateID()
	}
	clone := *posting
	m.store[posting.ID.Int64()] = &clone
	return nil
}

func (m *memJobRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	posting, ok := m.store[id.Int64()]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	clone := *posting
	return &clone, nil
}

func (m *memJobRepo) Update(ctx context.Context, posting *job.Job) error {
	if _, ok := m.store[posting.ID.Int64()]; !ok {
		return job.ErrJobNotFound()
	}
	clone := *posting
	m.store[posting.ID.Int64()] = &clone
	return nil
}

func (m *memJobRepo) Delete(ctx context.Context, id kernel.JobID) error {
	if _, ok := m.store[id.Int64()]; !ok {
		return job.ErrJobNotFound()
	}
	delete(m.store, id.Int64())
	return nil
}

func (m *memJobRepo) SetStatus(ctx context.Context, id kernel.JobID, status job.Status, updatedAt time.Time) error {
	posting, ok := m.store[id.Int64()]
	if !ok {
		return job.ErrJobNotFound()
	}
	posting.Status = status
	posting.UpdatedAt = &updatedAt
	return nil
}

func (m *memJobRepo) ListPublic(ctx context.Context, filter job.PublicFilter) ([]job.Job, error) {
	postings := make([]job.Job, 0)
	for _, posting := range m.sorted() {
		if posting.Status != job.StatusActive {
			continue
		}
		if filter.Type != "" && posting.Type != filter.Type {
			continue
		}
		if filter.Experience != "" && posting.Experience != filter.Experience {
			continue
		}
		postings = append(postings, *posting)
	}
	return postings, nil
}

func (m *memJobRepo) ListAll(ctx context.Context) ([]job.Job, error) {
	postings := make([]job.Job, 0, len(m.store))
	for _, posting := range m.sorted() {
		postings = append(postings, *posting)
	}
	return postings, nil
}

func (m *memJobRepo) sorted() []*job.Job {
	ids := make([]int64, 0, len(m.store))
	for id := range m.store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	postings := make([]*job.Job, 0, len(ids))
	for _, id := range ids {
		postings = append(postings, m.store[id])
	}
	return postings
}

func (m *memJobRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.store)), nil
}

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return fiber.DefaultErrorHandler(c, err)
		},
	})

	tokens := adminauth.NewTokenService("test-secret", time.Hour)
	service := jobsrv.NewJobService(newMemJobRepo())
	RegisterRoutes(app, NewHandlers(service), adminauth.Middleware(tokens))

	token, _, err := tokens.Generate("admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return app, token
}

func createJob(t *testing.T, app *fiber.App, token, title string) job.CreateJobResponse {
	t.Helper()

	payload := map[string]any{
		"title":       title,
		"company":     "TechNova Solutions",
		"location":    "Bangalore",
		"type":        "Full-time",
		"experience":  "0-1 years",
		"salary":      "4 - 6 LPA",
		"description": "Build things.",
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/admin/jobs", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created job.CreateJobResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return created
}

func TestCreateAndListPublic(t *testing.T) {
	app, token := newTestApp(t)

	created := createJob(t, app, token, "Backend Developer")
	if created.JobID != 1 {
		t.Errorf("JobID = %d, want 1", created.JobID)
	}
	if created.Job == nil || created.Job.Status != job.StatusActive {
		t.Fatalf("created job = %+v, want Active posting", created.Job)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public list status = %d, want 200", resp.StatusCode)
	}
	var postings []job.Job
	if err := json.NewDecoder(resp.Body).Decode(&postings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(postings) != 1 || postings[0].Title != "Backend Developer" {
		t.Fatalf("public board = %+v", postings)
	}
}

func TestAdminJobRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/jobs"},
		{http.MethodPost, "/admin/jobs"},
		{http.MethodPut, "/admin/jobs/1"},
		{http.MethodDelete, "/admin/jobs/1"},
		{http.MethodPut, "/admin/jobs/1/toggle-status"},
	}
	for _, route := range paths {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil))
		if err != nil {
			t.Fatalf("Test %s %s: %v", route.method, route.path, err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s = %d, want 401", route.method, route.path, resp.StatusCode)
		}
	}
}

func TestToggleHidesPostingFromPublicBoard(t *testing.T) {
	app, token := newTestApp(t)

	created := createJob(t, app, token, "Backend Developer")

	req := httptest.NewRequest(http.MethodPut, "/admin/jobs/1/toggle-status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", resp.StatusCode)
	}
	var toggled job.ToggleStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&toggled); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if toggled.Status != job.StatusInactive {
		t.Errorf("toggled status = %q, want Inactive", toggled.Status)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/jobs", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	var postings []job.Job
	if err := json.NewDecoder(resp.Body).Decode(&postings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(postings) != 0 {
		t.Fatalf("public board still lists posting %d", created.JobID)
	}

	// The public detail page treats it as missing.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/jobs/1", nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET /jobs/1 = %d, want 404", resp.StatusCode)
	}
}

func TestCreateValidation(t *testing.T) {
	app, token := newTestApp(t)

	body := bytes.NewBufferString(`{"title":"Only a title"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/jobs", body)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
