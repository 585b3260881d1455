package tokens

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateParseRoundTrip(t *testing.T) {
	tkn := New(Options{SigningKey: "test-key", Issuer: "taskdeck", TTL: time.Hour})

	signed, err := tkn.Generate("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := tkn.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", claims.UserID)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	minted := New(Options{SigningKey: "key-a", TTL: time.Hour})
	verifier := New(Options{SigningKey: "key-b", TTL: time.Hour})

	signed, err := minted.Generate("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := verifier.Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tkn := New(Options{SigningKey: "test-key", TTL: -time.Minute})

	signed, err := tkn.Generate("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := tkn.Parse(signed); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tkn := New(Options{SigningKey: "test-key", TTL: time.Hour})

	if _, err := tkn.Parse("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
