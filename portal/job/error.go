package job

import (
	"net/http"

	"github.com/talentgate/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound    = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeMissingField   = ErrRegistry.Register("MISSING_FIELD", errx.TypeValidation, http.StatusBadRequest, "Required field is missing")
	CodeDuplicateID    = ErrRegistry.Register("DUPLICATE_ID", errx.TypeConflict, http.StatusConflict, "Job ID already exists")
	CodeIDExhausted    = ErrRegistry.Register("ID_EXHAUSTED", errx.TypeConflict, http.StatusConflict, "Could not allocate a unique job ID")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrMissingField(field string) *errx.Error {
	return ErrRegistry.New(CodeMissingField).WithDetail("field", field)
}

func ErrDuplicateID() *errx.Error {
	return ErrRegistry.New(CodeDuplicateID)
}

func ErrIDExhausted() *errx.Error {
	return ErrRegistry.New(CodeIDExhausted)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
