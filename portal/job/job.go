package job

import (
	"time"

	"github.com/talentgate/jobportal/pkg/kernel"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Status represents the visibility of a job posting
type Status string

const (
	StatusActive   Status = "Active"   // Visible on the public board
	StatusInactive Status = "Inactive" // Hidden, admin-only
)

// Job is a posting as stored in the "jobs" collection.
type Job struct {
	ObjectID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID               kernel.JobID  `bson:"id" json:"id"`
	Title            string        `bson:"title" json:"title"`
	Company          string        `bson:"company" json:"company"`
	Location         string        `bson:"location" json:"location"`
	Type             string        `bson:"type" json:"type"`
	Experience       string        `bson:"experience" json:"experience"`
	ExperienceLevel  string        `bson:"experienceLevel" json:"experienceLevel"`
	Salary           string        `bson:"salary" json:"salary"`
	PostedDate       string        `bson:"postedDate" json:"postedDate"`
	Applicants       int64         `bson:"applicants" json:"applicants"`
	Description      string        `bson:"description" json:"description"`
	Responsibilities []string      `bson:"responsibilities" json:"responsibilities"`
	Requirements     []string      `bson:"requirements" json:"requirements"`
	Skills           []string      `bson:"skills" json:"skills"`
	Benefits         []string      `bson:"benefits" json:"benefits"`
	Status           Status        `bson:"status" json:"status"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt        *time.Time    `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsActive reports whether the posting is publicly visible.
func (j *Job) IsActive() bool {
	return j.Status == StatusActive
}

// Toggled returns the opposite visibility status.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}
