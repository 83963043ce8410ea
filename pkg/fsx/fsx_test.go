package fsx

import (
	"errors"
	"testing"
)

func TestValidateFilename(t *testing.T) {
	valid := []string{
		"resume.pdf",
		"20250101_120000_resume.pdf",
		"name with spaces.docx",
		"weird%20chars.pdf",
	}
	for _, name := range valid {
		if err := ValidateFilename(name); err != nil {
			t.Errorf("ValidateFilename(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"",
		"..",
		"../secret.txt",
		"..\\secret.txt",
		"a/b.txt",
		`a\b.txt`,
		"/etc/passwd",
		"dir/../file.pdf",
	}
	for _, name := range invalid {
		err := ValidateFilename(name)
		if !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("ValidateFilename(%q) = %v, want ErrInvalidFilename", name, err)
		}
	}
}
