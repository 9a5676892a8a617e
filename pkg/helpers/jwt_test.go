package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestJWT_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty string")
	}
	if time.Until(exp) < 55*time.Minute {
		t.Errorf("expiry too soon: %v", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("expected uid user-123, got %s", claims.UserID)
	}
}

func TestJWT_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = m.Parse(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	token, _, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewJWTManager("secret-b", time.Hour)
	if _, err := other.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWT_Garbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	if _, err := m.Parse("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
