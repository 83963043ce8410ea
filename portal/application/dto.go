package application

// SubmitApplicationRequest - DTO for a public application submission.
// All applicant fields are opaque strings from the caller's perspective.
type SubmitApplicationRequest struct {
	Position string `json:"position"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	College  string `json:"college"`
	Degree   string `json:"degree"`
	Year     string `json:"year"`
	Skills   string `json:"skills"`

	// Resume upload, taken from the multipart form rather than the body.
	ResumeFileName string `json:"-"`
	ResumeData     []byte `json:"-"`
}

// SubmitApplicationResponse - returned after a successful submission
type SubmitApplicationResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ListFilter - optional exact-match filters for the admin listing.
// The literal value "all" is treated the same as an absent filter.
type ListFilter struct {
	Position string
	Status   string
}

// UpdateStatusRequest - DTO for a status change
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// StatisticsResponse - aggregate counts for the admin dashboard
type StatisticsResponse struct {
	Total      int64            `json:"total"`
	ByPosition map[string]int64 `json:"by_position"`
	ByStatus   map[Status]int64 `json:"by_status"`
	Recent     []Application    `json:"recent_applications"`
}
