package utils

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "super-secret"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == password {
		t.Error("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	// bcrypt salts every hash, so two hashes of the same input differ
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == second {
		t.Error("expected distinct salted hashes for the same password")
	}
}

func TestVerifyPassword(t *testing.T) {
	password := "super-secret"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !VerifyPassword(password, hash) {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("expected wrong password to fail verification")
	}
	if VerifyPassword(password, "not-a-hash") {
		t.Error("expected malformed hash to fail verification")
	}
}
