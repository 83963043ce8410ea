package application

import (
	"net/http"

	"github.com/talentgate/jobportal/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeResumeRequired      = ErrRegistry.Register("RESUME_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Resume file is required")
	CodeInvalidStatus       = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid status")
	CodeInvalidFilename     = ErrRegistry.Register("INVALID_FILENAME", errx.TypeValidation, http.StatusBadRequest, "Invalid filename")
	CodeResumeNotFound      = ErrRegistry.Register("RESUME_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeDuplicateID         = ErrRegistry.Register("DUPLICATE_ID", errx.TypeConflict, http.StatusConflict, "Application ID already exists")
	CodeIDExhausted         = ErrRegistry.Register("ID_EXHAUSTED", errx.TypeConflict, http.StatusConflict, "Could not allocate a unique application ID")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeNoData              = ErrRegistry.Register("NO_DATA", errx.TypeNotFound, http.StatusNotFound, "No data available")
)

// Helper functions
func ErrApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicationNotFound)
}

func ErrResumeRequired() *errx.Error {
	return ErrRegistry.New(CodeResumeRequired)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidFilename() *errx.Error {
	return ErrRegistry.New(CodeInvalidFilename)
}

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
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

func ErrNoData() *errx.Error {
	return ErrRegistry.New(CodeNoData)
}
