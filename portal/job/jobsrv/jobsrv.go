package jobsrv

import (
	"context"
	"strings"
	"time"

	"github.com/talentgate/jobportal/pkg/errx"
	"github.com/talentgate/jobportal/pkg/kernel"
	"github.com/talentgate/jobportal/pkg/logx"
	"github.com/talentgate/jobportal/portal/job"
)

// createMaxAttempts bounds the allocate-then-insert retry loop, same
// contract as the application sequence.
const createMaxAttempts = 3

// JobService implements job posting curation and the public board
type JobService struct {
	repo job.Repository
}

// NewJobService creates a new job service
func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo}
}

// Create validates the request, allocates a sequential ID and stores a new
// posting. New postings start Active with zero applicants.
func (s *JobService) Create(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	if field := req.Validate(); field != "" {
		return nil, job.ErrMissingField(field)
	}

	experienceLevel := strings.TrimSpace(req.ExperienceLevel)
	if experienceLevel == "" {
		experienceLevel = "Fresher"
	}

	posting := &job.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             req.Type,
		Experience:       req.Experience,
		ExperienceLevel:  experienceLevel,
		Salary:           req.Salary,
		PostedDate:       "Just now",
		Applicants:       0,
		Description:      req.Description,
		Responsibilities: emptyIfNil(req.Responsibilities),
		Requirements:     emptyIfNil(req.Requirements),
		Skills:           emptyIfNil(req.Skills),
		Benefits:         emptyIfNil(req.Benefits),
		Status:           job.StatusActive,
		CreatedAt:        time.Now(),
	}

	if err := s.createWithRetry(ctx, posting); err != nil {
		return nil, err
	}
	return posting, nil
}

func (s *JobService) createWithRetry(ctx context.Context, posting *job.Job) error {
	for attempt := 1; attempt <= createMaxAttempts; attempt++ {
		id, err := s.repo.NextID(ctx)
		if err != nil {
			return err
		}
		posting.ID = id

		err = s.repo.Create(ctx, posting)
		if err == nil {
			return nil
		}
		if !errx.IsCode(err, job.CodeDuplicateID) {
			return err
		}
		logx.Warnf("job ID %s already taken, retrying (attempt %d/%d)", id, attempt, createMaxAttempts)
	}
	return job.ErrIDExhausted().WithDetail("attempts", createMaxAttempts)
}

// Update replaces a posting's descriptive fields. Identity, status, the
// applicant counter and the posted date carry over from the stored record.
func (s *JobService) Update(ctx context.Context, id kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	if field := req.Validate(); field != "" {
		return nil, job.ErrMissingField(field)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.Title = req.Title
	existing.Company = req.Company
	existing.Location = req.Location
	existing.Type = req.Type
	existing.Experience = req.Experience
	if level := strings.TrimSpace(req.ExperienceLevel); level != "" {
		existing.ExperienceLevel = level
	}
	existing.Salary = req.Salary
	existing.Description = req.Description
	existing.Responsibilities = emptyIfNil(req.Responsibilities)
	existing.Requirements = emptyIfNil(req.Requirements)
	existing.Skills = emptyIfNil(req.Skills)
	existing.Benefits = emptyIfNil(req.Benefits)
	existing.UpdatedAt = &now

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a posting
func (s *JobService) Delete(ctx context.Context, id kernel.JobID) error {
	return s.repo.Delete(ctx, id)
}

// ToggleStatus flips a posting between Active and Inactive and returns
// the new status.
func (s *JobService) ToggleStatus(ctx context.Context, id kernel.JobID) (job.Status, error) {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	next := posting.Status.Toggled()
	if err := s.repo.SetStatus(ctx, id, next, time.Now()); err != nil {
		return "", err
	}
	return next, nil
}

// ListPublic returns active postings for the board. Filter values of
// "all" mean no filtering.
func (s *JobService) ListPublic(ctx context.Context, filter job.PublicFilter) ([]job.Job, error) {
	if strings.EqualFold(filter.Type, "all") {
		filter.Type = ""
	}
	if strings.EqualFold(filter.Experience, "all") {
		filter.Experience = ""
	}
	return s.repo.ListPublic(ctx, filter)
}

// ListAdmin returns every posting regardless of visibility
func (s *JobService) ListAdmin(ctx context.Context) ([]job.Job, error) {
	return s.repo.ListAll(ctx)
}

// GetPublic retrieves one posting for the public detail page. Inactive
// postings are reported as not found.
func (s *JobService) GetPublic(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !posting.IsActive() {
		return nil, job.ErrJobNotFound().WithDetail("id", id.Int64())
	}
	return posting, nil
}

// Get retrieves one posting for admin use
func (s *JobService) Get(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// Count returns the total number of postings
func (s *JobService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
