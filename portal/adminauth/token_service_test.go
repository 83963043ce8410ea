package adminauth

import (
	"testing"
	"time"

	"github.com/talentgate/jobportal/pkg/errx"
)

func TestTokenRoundtrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, expiresAt, err := svc.Generate("admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute {
		t.Errorf("expiry only %v away, want about an hour", remaining)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, _, err := svc.Generate("admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = svc.Validate(token)
	if !errx.IsCode(err, CodeTokenExpired) {
		t.Fatalf("Validate expired token = %v, want CodeTokenExpired", err)
	}
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, _, err := issuer.Generate("admin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	_, err = verifier.Validate(token)
	if !errx.IsCode(err, CodeInvalidToken) {
		t.Fatalf("Validate foreign token = %v, want CodeInvalidToken", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-jwt")
	if !errx.IsCode(err, CodeInvalidToken) {
		t.Fatalf("Validate garbage = %v, want CodeInvalidToken", err)
	}
}
