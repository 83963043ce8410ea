package job

import "strings"

// CreateJobRequest - DTO for creating a posting. Unset list fields become
// empty (never null) lists on the stored document.
type CreateJobRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Experience       string   `json:"experience"`
	ExperienceLevel  string   `json:"experienceLevel"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	Benefits         []string `json:"benefits"`
}

// Validate returns the name of the first missing required field, or ""
// when the request is complete.
func (r *CreateJobRequest) Validate() string {
	required := []struct {
		name  string
		value string
	}{
		{"title", r.Title},
		{"company", r.Company},
		{"location", r.Location},
		{"type", r.Type},
		{"experience", r.Experience},
		{"salary", r.Salary},
		{"description", r.Description},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return field.name
		}
	}
	return ""
}

// UpdateJobRequest - DTO for editing a posting's descriptive fields.
// Identity, status, counters and the posted date are not editable here.
type UpdateJobRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Experience       string   `json:"experience"`
	ExperienceLevel  string   `json:"experienceLevel"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	Benefits         []string `json:"benefits"`
}

// Validate returns the name of the first missing required field, or "".
func (r *UpdateJobRequest) Validate() string {
	create := CreateJobRequest{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Type:        r.Type,
		Experience:  r.Experience,
		Salary:      r.Salary,
		Description: r.Description,
	}
	return create.Validate()
}

// PublicFilter - optional exact-match filters for the public job board.
// The literal value "all" is treated the same as an absent filter.
type PublicFilter struct {
	Type       string
	Experience string
}

// ToggleStatusResponse - returned after flipping a posting's visibility
type ToggleStatusResponse struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
}

// CreateJobResponse - returned after a successful creation
type CreateJobResponse struct {
	Message string `json:"message"`
	JobID   int64  `json:"job_id"`
	Job     *Job   `json:"job"`
}
