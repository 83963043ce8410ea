package kernel

import "strconv"

// ApplicationID is the sequential, externally visible identifier of an
// application record. It is assigned by the service, not by the store.
type ApplicationID int64

func NewApplicationID(id int64) ApplicationID { return ApplicationID(id) }
func (r ApplicationID) Int64() int64          { return int64(r) }
func (r ApplicationID) String() string        { return strconv.FormatInt(int64(r), 10) }
func (r ApplicationID) IsZero() bool          { return r == 0 }

// ParseApplicationID parses a decimal route parameter into an ApplicationID.
func ParseApplicationID(s string) (ApplicationID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ApplicationID(v), nil
}

// JobID is the sequential identifier of a job posting. Jobs and
// applications number independently.
type JobID int64

func NewJobID(id int64) JobID  { return JobID(id) }
func (r JobID) Int64() int64   { return int64(r) }
func (r JobID) String() string { return strconv.FormatInt(int64(r), 10) }
func (r JobID) IsZero() bool   { return r == 0 }

// ParseJobID parses a decimal route parameter into a JobID.
func ParseJobID(s string) (JobID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return JobID(v), nil
}
