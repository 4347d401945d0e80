package encrypter_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"project-tracker/pkg/encrypter"
)

func TestEncrypter(t *testing.T) {
	enc := encrypter.New(bcrypt.MinCost)

	hash, err := enc.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("password stored in clear")
	}

	if err := enc.ComparePassword(hash, "s3cret-pass"); err != nil {
		t.Errorf("ComparePassword() with right password error = %v", err)
	}
	if err := enc.ComparePassword(hash, "wrong"); err != encrypter.ErrMismatch {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
	if err := enc.ComparePassword("not-a-hash", "s3cret-pass"); err != encrypter.ErrMismatch {
		t.Errorf("expected ErrMismatch for malformed hash, got %v", err)
	}
}
