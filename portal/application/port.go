package application

import (
	"context"
	"time"

	"github.com/talentgate/jobportal/pkg/kernel"
)

type Repository interface {
	// NextID returns a candidate sequential ID: one greater than the
	// current maximum, or 1 for an empty collection. The read is not
	// atomic with the subsequent insert; the store's unique index on the
	// ID field is what rejects the loser of a race, and Create reports
	// that as a conflict the caller must treat as retryable.
	NextID(ctx context.Context) (kernel.ApplicationID, error)

	// Create inserts a new application. A duplicate sequential ID is
	// reported as a conflict error.
	Create(ctx context.Context, app *Application) error

	// GetByID retrieves an application by its sequential ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// List retrieves applications matching the filter, descending by ID
	List(ctx context.Context, filter ListFilter) ([]Application, error)

	// UpdateStatus sets the status and update timestamp of one record
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status Status, updatedAt time.Time) error

	// Delete removes an application record
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// Count returns the total number of applications
	Count(ctx context.Context) (int64, error)

	// CountByPosition groups application counts by position
	CountByPosition(ctx context.Context) (map[string]int64, error)

	// CountByStatus groups application counts by stored status value
	CountByStatus(ctx context.Context) (map[string]int64, error)

	// ListRecent returns the most recently created applications
	ListRecent(ctx context.Context, limit int) ([]Application, error)
}
