package adminauth

import (
	"testing"
	"time"

	"github.com/talentgate/jobportal/pkg/errx"
)

func newTestAuthService() *AuthService {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(tokens, "admin", "admin123")
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService()

	resp, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Message != "Login successful" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.Username != "admin" {
		t.Errorf("Username = %q, want admin", resp.Username)
	}
	if resp.Token == "" {
		t.Error("Token is empty")
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	svc := newTestAuthService()

	for _, creds := range [][2]string{{"", ""}, {"admin", ""}, {"", "admin123"}} {
		_, err := svc.Login(creds[0], creds[1])
		if !errx.IsCode(err, CodeMissingCredentials) {
			t.Errorf("Login(%q, %q) = %v, want CodeMissingCredentials", creds[0], creds[1], err)
		}
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	svc := newTestAuthService()

	for _, creds := range [][2]string{{"admin", "wrong"}, {"root", "admin123"}, {"Admin", "admin123"}} {
		_, err := svc.Login(creds[0], creds[1])
		if !errx.IsCode(err, CodeInvalidCredentials) {
			t.Errorf("Login(%q, %q) = %v, want CodeInvalidCredentials", creds[0], creds[1], err)
		}
	}
}
