package application

import (
	"slices"
	"time"

	"github.com/talentgate/jobportal/pkg/kernel"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status represents the lifecycle status of an application
type Status string

const (
	StatusPending     Status = "Pending"     // Initial state at submission
	StatusReviewed    Status = "Reviewed"    // Seen by an administrator
	StatusShortlisted Status = "Shortlisted" // Passed review
	StatusRejected    Status = "Rejected"    // Rejected
)

// AllStatuses lists every valid lifecycle status.
var AllStatuses = []Status{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}

// IsValid reports whether s is one of the four lifecycle statuses.
func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses, s)
}

// Application is an application record as stored in the "applications"
// collection. Field keys match the existing documents, spaces included,
// so the store can be read in place without a migration.
type Application struct {
	ObjectID    bson.ObjectID        `bson:"_id,omitempty" json:"_id,omitempty"`
	ID          kernel.ApplicationID `bson:"ID" json:"ID"`
	Position    string               `bson:"Position" json:"Position"`
	Name        string               `bson:"Name" json:"Name"`
	Email       string               `bson:"Email" json:"Email"`
	Phone       string               `bson:"Phone" json:"Phone"`
	College     string               `bson:"College" json:"College"`
	Degree      string               `bson:"Degree" json:"Degree"`
	PassoutYear string               `bson:"Passout Year" json:"Passout Year"`
	Skills      string               `bson:"Skills" json:"Skills"`
	ResumeFile  string               `bson:"Resume File" json:"Resume File"`
	ResumePath  string               `bson:"Resume Path" json:"Resume Path"`
	AppliedDate string               `bson:"Applied Date" json:"Applied Date"`
	Status      Status               `bson:"Status" json:"Status"`
	CreatedAt   time.Time            `bson:"Created At" json:"Created At"`
	UpdatedAt   *time.Time           `bson:"Updated At,omitempty" json:"Updated At,omitempty"`
}

// HasResume reports whether a resume file reference is stored.
func (a *Application) HasResume() bool {
	return a.ResumeFile != ""
}
