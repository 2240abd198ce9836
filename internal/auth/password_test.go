package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", DefaultBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "s3cret-pass") {
		t.Fatalf("expected correct password to verify")
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", DefaultBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$banana"} {
		if VerifyPassword(hash, "anything") {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}

func TestHashPasswordLowCostFallsBack(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 0)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "s3cret-pass") {
		t.Fatalf("expected hash produced with fallback cost to verify")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("same-pass", DefaultBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := HashPassword("same-pass", DefaultBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
}
