package applicationsrv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/talentgate/jobportal/pkg/errx"
	"github.com/talentgate/jobportal/pkg/fsx"
	"github.com/talentgate/jobportal/pkg/kernel"
	"github.com/talentgate/jobportal/pkg/logx"
	"github.com/talentgate/jobportal/portal/application"
)

// createMaxAttempts bounds the allocate-then-insert retry loop. The ID read
// is not atomic with the insert, so a concurrent submission can claim the
// same candidate; the unique index rejects the loser and we re-allocate.
const createMaxAttempts = 3

const (
	appliedDateLayout    = "2006-01-02 15:04:05"
	resumePrefixLayout   = "20060102_150405"
	recentApplicationCap = 5
)

// ApplicationService implements the application intake and review use cases
type ApplicationService struct {
	repo  application.Repository
	files fsx.FileSystem
}

// NewApplicationService creates a new application service
func NewApplicationService(repo application.Repository, files fsx.FileSystem) *ApplicationService {
	return &ApplicationService{
		repo:  repo,
		files: files,
	}
}

// Submit stores the resume, allocates a sequential ID and creates the
// application record. The stored filename is timestamp-prefixed to keep
// uploads with the same original name apart.
func (s *ApplicationService) Submit(ctx context.Context, req application.SubmitApplicationRequest) (*application.SubmitApplicationResponse, error) {
	if req.ResumeFileName == "" || len(req.ResumeData) == 0 {
		return nil, application.ErrResumeRequired()
	}

	now := time.Now()
	storedName := buildResumeFilename(now, req.ResumeFileName)
	if err := s.files.WriteFile(ctx, storedName, req.ResumeData); err != nil {
		return nil, errx.Wrap(err, "failed to store resume file", errx.TypeInternal)
	}

	position := strings.TrimSpace(req.Position)
	if position == "" {
		position = "N/A"
	}

	app := &application.Application{
		Position:    position,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		College:     req.College,
		Degree:      req.Degree,
		PassoutYear: req.Year,
		Skills:      req.Skills,
		ResumeFile:  storedName,
		ResumePath:  storedName,
		AppliedDate: now.Format(appliedDateLayout),
		Status:      application.StatusPending,
		CreatedAt:   now,
	}

	if err := s.createWithRetry(ctx, app); err != nil {
		if cleanupErr := s.files.DeleteFile(ctx, storedName); cleanupErr != nil && !errors.Is(cleanupErr, fsx.ErrNotFound) {
			logx.Warnf("failed to remove orphaned resume %s: %v", storedName, cleanupErr)
		}
		return nil, err
	}

	return &application.SubmitApplicationResponse{
		Message: "Application submitted successfully",
		ID:      app.ObjectID.Hex(),
	}, nil
}

// createWithRetry allocates a fresh candidate ID before every insert
// attempt and retries only on an ID conflict.
func (s *ApplicationService) createWithRetry(ctx context.Context, app *application.Application) error {
	for attempt := 1; attempt <= createMaxAttempts; attempt++ {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			return err
		}
		app.ID = id

		err = s.repo.Create(ctx, app)
		if err == nil {
			return nil
		}
		if !errx.IsCode(err, application.CodeDuplicateID) {
			return err
		}
		logx.Warnf("application ID %s already taken, retrying (attempt %d/%d)", id, attempt, createMaxAttempts)
	}
	return application.ErrIDExhausted().WithDetail("attempts", createMaxAttempts)
}

// Get retrieves a single application by its sequential ID
func (s *ApplicationService) Get(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves applications, optionally filtered by position and status.
// The filter value "all" means no filtering, matching what the admin UI sends.
func (s *ApplicationService) List(ctx context.Context, filter application.ListFilter) ([]application.Application, error) {
	return s.repo.List(ctx, normalizeFilter(filter))
}

// UpdateStatus transitions an application to a new lifecycle status
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.Status) error {
	if !status.IsValid() {
		return application.ErrInvalidStatus().WithDetail("status", string(status))
	}
	return s.repo.UpdateStatus(ctx, id, status, time.Now())
}

// Delete removes an application and its stored resume. A missing resume
// file is not an error; any other file-store failure is logged and the
// record is still removed.
func (s *ApplicationService) Delete(ctx context.Context, id kernel.ApplicationID) error {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if app.HasResume() {
		if err := s.files.DeleteFile(ctx, app.ResumeFile); err != nil && !errors.Is(err, fsx.ErrNotFound) {
			logx.Warnf("failed to delete resume %s for application %s: %v", app.ResumeFile, id, err)
		}
	}

	return s.repo.Delete(ctx, id)
}

// Statistics assembles the admin dashboard aggregates. Every lifecycle
// status appears in the breakdown even when its count is zero.
func (s *ApplicationService) Statistics(ctx context.Context) (*application.StatisticsResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	byPosition, err := s.repo.CountByPosition(ctx)
	if err != nil {
		return nil, err
	}

	rawByStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[application.Status]int64, len(application.AllStatuses))
	for _, status := range application.AllStatuses {
		byStatus[status] = rawByStatus[string(status)]
	}

	recent, err := s.repo.ListRecent(ctx, recentApplicationCap)
	if err != nil {
		return nil, err
	}

	return &application.StatisticsResponse{
		Total:      total,
		ByPosition: byPosition,
		ByStatus:   byStatus,
		Recent:     recent,
	}, nil
}

// OpenResume opens a stored resume by filename. The name is validated
// before any lookup so traversal attempts never reach the file store.
func (s *ApplicationService) OpenResume(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := fsx.ValidateFilename(filename); err != nil {
		return nil, application.ErrInvalidFilename().WithDetail("filename", filename)
	}

	reader, err := s.files.OpenFile(ctx, filename)
	if err != nil {
		if errors.Is(err, fsx.ErrNotFound) {
			return nil, application.ErrResumeNotFound().WithDetail("filename", filename)
		}
		return nil, errx.Wrap(err, "failed to open resume file", errx.TypeInternal)
	}
	return reader, nil
}

// ExportExcel renders the filtered application list as a spreadsheet and
// returns the workbook bytes with a timestamped download name.
func (s *ApplicationService) ExportExcel(ctx context.Context, position string) (*bytes.Buffer, string, error) {
	filter := normalizeFilter(application.ListFilter{Position: position})
	apps, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	if len(apps) == 0 {
		return nil, "", application.ErrNoData()
	}

	buf, err := buildApplicationsWorkbook(apps)
	if err != nil {
		return nil, "", errx.Wrap(err, "failed to build export workbook", errx.TypeInternal)
	}

	filename := fmt.Sprintf("applications_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf, filename, nil
}

// Count returns the total number of application records
func (s *ApplicationService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func normalizeFilter(filter application.ListFilter) application.ListFilter {
	if strings.EqualFold(filter.Position, "all") {
		filter.Position = ""
	}
	if strings.EqualFold(filter.Status, "all") {
		filter.Status = ""
	}
	return filter
}

// buildResumeFilename prefixes the upload's base name with a timestamp.
// When stripping path components leaves nothing usable, a random name
// keeps the upload instead of failing the submission.
func buildResumeFilename(now time.Time, original string) string {
	base := filepath.Base(filepath.Clean(strings.ReplaceAll(original, `\`, "/")))
	if base == "." || base == ".." || base == "/" || base == "" {
		base = uuid.NewString() + ".bin"
	}
	return now.Format(resumePrefixLayout) + "_" + base
}
