package job

import (
	"context"
	"time"

	"github.com/talentgate/jobportal/pkg/kernel"
)

type Repository interface {
	// NextID returns a candidate sequential ID: one greater than the
	// current maximum, or 1 for an empty collection. Like the application
	// sequence, the read is not atomic with the insert; the unique index
	// on the ID field settles races and Create reports the loser's
	// duplicate as a conflict.
	NextID(ctx context.Context) (kernel.JobID, error)

	// Create inserts a new posting. A duplicate sequential ID is
	// reported as a conflict error.
	Create(ctx context.Context, posting *Job) error

	// GetByID retrieves a posting by its sequential ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Update replaces a posting document in place
	Update(ctx context.Context, posting *Job) error

	// Delete removes a posting
	Delete(ctx context.Context, id kernel.JobID) error

	// SetStatus updates only the visibility status and update timestamp
	SetStatus(ctx context.Context, id kernel.JobID, status Status, updatedAt time.Time) error

	// ListPublic returns active postings matching the filter, newest first
	ListPublic(ctx context.Context, filter PublicFilter) ([]Job, error)

	// ListAll returns every posting regardless of status, newest first
	ListAll(ctx context.Context) ([]Job, error)

	// Count returns the total number of postings
	Count(ctx context.Context) (int64, error)
}
