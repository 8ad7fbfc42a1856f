package auth

import (
	"strings"
	"testing"
	"time"
)

func TestNewManagerAndTokenLifecycle(t *testing.T) {
	mgr, err := NewManager("test-secret", "issuer", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	token, expiresAt, err := mgr.GenerateToken(42, "user@example.com", "admin")
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if !strings.EqualFold(claims.Email, "user@example.com") {
		t.Fatalf("unexpected email %s", claims.Email)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected role %s", claims.Role)
	}
	if claims.Subject != "user@example.com" {
		t.Fatalf("expected subject to carry the email, got %s", claims.Subject)
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	mgr, err := NewManager("test-secret", "issuer", time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	token, _, err := mgr.GenerateToken(7, "u@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := mgr.ParseToken(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	mgr, _ := NewManager("secret-a", "issuer", time.Hour)
	other, _ := NewManager("secret-b", "issuer", time.Hour)

	token, _, err := mgr.GenerateToken(1, "u@example.com", "user")
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected token signed with a different secret to fail")
	}
}
